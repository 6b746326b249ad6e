package models

// CPUInfo represents the processor identity and live metrics collected
// during one snapshot. Optional readings are pointers; nil means the
// platform did not expose the value.
type CPUInfo struct {
	Brand        string `json:"brand"`
	Architecture string `json:"architecture"`
	Bits         int    `json:"bits"`

	PhysicalCores int `json:"physical_cores"`
	LogicalCores  int `json:"logical_cores"`

	AdvertisedMHz *float64 `json:"advertised_mhz,omitempty"`
	CurrentMHz    *float64 `json:"current_mhz,omitempty"`
	MinMHz        *float64 `json:"min_mhz,omitempty"`
	MaxMHz        *float64 `json:"max_mhz,omitempty"`

	UsagePercent float64   `json:"usage_percent"`
	PerCoreUsage []float64 `json:"per_core_usage,omitempty"`

	TemperatureC *float64 `json:"temperature_c,omitempty"`

	L2CacheKB *int `json:"l2_cache_kb,omitempty"`
	L3CacheKB *int `json:"l3_cache_kb,omitempty"`

	CtxSwitches uint64 `json:"ctx_switches"`
	Interrupts  uint64 `json:"interrupts"`

	// Throttling is derived from frequency ratio and temperature, never
	// measured directly.
	Throttling bool `json:"throttling"`
}
