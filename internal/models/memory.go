package models

// Channel mode values derived from the populated slot count.
const (
	ChannelUnknown = "Unknown"
	ChannelSingle  = "Single Channel"
	ChannelDual    = "Dual Channel"
)

// MemoryInfo represents RAM usage plus module metadata when available.
// Module fields come from a privileged secondary probe and keep their
// defaults when that probe fails.
type MemoryInfo struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`

	SwapTotalGB float64 `json:"swap_total_gb"`
	SwapUsedGB  float64 `json:"swap_used_gb"`
	SwapPercent float64 `json:"swap_percent"`

	MemoryType  string `json:"memory_type"`
	SpeedMHz    *int   `json:"speed_mhz,omitempty"`
	SlotsUsed   int    `json:"slots_used"`
	SlotsTotal  int    `json:"slots_total"`
	ChannelMode string `json:"channel_mode"`
}

// ChannelModeFor maps a populated slot count to its channel mode label.
func ChannelModeFor(slotsUsed int) string {
	switch {
	case slotsUsed >= 2:
		return ChannelDual
	case slotsUsed == 1:
		return ChannelSingle
	default:
		return ChannelUnknown
	}
}
