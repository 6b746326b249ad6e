package models

// GPUNotAvailable is the sentinel name used when no detection tier
// found a GPU. Consumers always receive at least one GPUInfo record.
const GPUNotAvailable = "Not Available"

// GPUInfo represents one graphics device. Inventory-only detection
// tiers populate the name (and sometimes VRAM) and leave the rest at
// defaults.
type GPUInfo struct {
	Name  string `json:"name"`
	Index int    `json:"index"`

	VRAMTotalMB float64 `json:"vram_total_mb"`
	VRAMUsedMB  float64 `json:"vram_used_mb"`
	VRAMFreeMB  float64 `json:"vram_free_mb"`

	UtilizationPercent    float64 `json:"utilization_percent"`
	MemUtilizationPercent float64 `json:"mem_utilization_percent"`

	TemperatureC    *float64 `json:"temperature_c,omitempty"`
	FanSpeedPercent *float64 `json:"fan_speed_percent,omitempty"`
	PowerDrawW      *float64 `json:"power_draw_w,omitempty"`
	PowerLimitW     *float64 `json:"power_limit_w,omitempty"`

	DriverVersion string `json:"driver_version"`
}

// SentinelGPU returns the placeholder record emitted when every
// detection tier came back empty.
func SentinelGPU() GPUInfo {
	return GPUInfo{Name: GPUNotAvailable, DriverVersion: "N/A"}
}
