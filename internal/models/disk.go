package models

// Disk type labels resolved by the storage collector's detection tiers.
const (
	DiskTypeHDD     = "HDD"
	DiskTypeSSD     = "SSD"
	DiskTypeNVMe    = "NVMe"
	DiskTypeUnknown = "Unknown"
)

// SMART status values. NotAvailable means smartctl is not installed,
// which is distinct from a query that ran but produced nothing usable.
const (
	SmartPassed       = "PASSED"
	SmartFailed       = "FAILED"
	SmartUnknown      = "Unknown"
	SmartNotAvailable = "N/A (smartctl not installed)"
)

// PartitionInfo represents one mounted partition with its usage.
type PartitionInfo struct {
	Device       string  `json:"device"`
	Mountpoint   string  `json:"mountpoint"`
	Filesystem   string  `json:"filesystem"`
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	FreeGB       float64 `json:"free_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// DiskInfo represents one physical disk and its partitions. SizeGB is
// the sum of the partition totals, not the raw device capacity.
type DiskInfo struct {
	Name   string `json:"name"`
	Model  string `json:"model"`
	Serial string `json:"serial"`

	DiskType string  `json:"disk_type"`
	SizeGB   float64 `json:"size_gb"`

	Partitions []PartitionInfo `json:"partitions"`

	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`

	SmartStatus       string   `json:"smart_status"`
	SmartTemperatureC *float64 `json:"smart_temperature_c,omitempty"`
}
