package models

// BenchmarkResults carries the opaque micro-benchmark scores attached
// to a snapshot. All fields are nil when benchmarks were skipped.
type BenchmarkResults struct {
	CPUSingleCore *float64 `json:"cpu_single_core,omitempty"`
	CPUMultiCore  *float64 `json:"cpu_multi_core,omitempty"`

	MemoryReadGBps  *float64 `json:"memory_read_gbps,omitempty"`
	MemoryWriteGBps *float64 `json:"memory_write_gbps,omitempty"`

	DiskReadMBps  *float64 `json:"disk_read_mbps,omitempty"`
	DiskWriteMBps *float64 `json:"disk_write_mbps,omitempty"`
}
