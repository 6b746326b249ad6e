package models

// Battery charge status derived from the plugged-in flag.
const (
	BatteryCharging    = "Charging"
	BatteryDischarging = "Discharging"
)

// BatteryInfo represents the host battery. When Present is false every
// other field holds its default and must not be interpreted.
//
// HealthPercent defaults to 100 when no capacity data is available;
// HealthMeasured distinguishes that optimistic default from a real
// reading.
type BatteryInfo struct {
	Present bool `json:"present"`

	ChargePercent float64 `json:"charge_percent"`
	PluggedIn     bool    `json:"plugged_in"`
	Status        string  `json:"status"`

	MinutesRemaining *float64 `json:"minutes_remaining,omitempty"`

	DesignCapacityMWh     *int `json:"design_capacity_mwh,omitempty"`
	FullChargeCapacityMWh *int `json:"full_charge_capacity_mwh,omitempty"`

	HealthPercent  float64 `json:"health_percent"`
	HealthMeasured bool    `json:"health_measured"`

	CycleCount *int `json:"cycle_count,omitempty"`
}
