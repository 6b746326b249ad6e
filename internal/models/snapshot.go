package models

import "time"

// Snapshot is one complete point-in-time reading of every hardware
// domain. It is never mutated after assembly; a new collection run
// replaces it wholesale.
type Snapshot struct {
	ID          string    `json:"id"`
	CollectedAt time.Time `json:"collected_at"`

	System     SystemOverview         `json:"system"`
	CPU        CPUInfo                `json:"cpu"`
	Memory     MemoryInfo             `json:"memory"`
	Disks      []DiskInfo             `json:"disks"`
	GPUs       []GPUInfo              `json:"gpus"`
	Battery    BatteryInfo            `json:"battery"`
	Interfaces []NetworkInterfaceInfo `json:"interfaces"`

	Benchmarks BenchmarkResults `json:"benchmarks"`
}
