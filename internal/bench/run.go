package bench

import (
	"log"

	"hwdoctor/internal/config"
	"hwdoctor/internal/models"
)

// Run executes every micro-benchmark with the configured sizing and
// returns the scores. A failing disk benchmark leaves its fields nil
// rather than aborting the run.
func Run(cfg config.Benchmarks) models.BenchmarkResults {
	var results models.BenchmarkResults

	log.Printf("Running CPU benchmark (%v per pass)", cfg.CPUDuration)
	single := CPUSingleCore(cfg.CPUDuration)
	results.CPUSingleCore = &single
	multi := CPUMultiCore(cfg.CPUDuration)
	results.CPUMultiCore = &multi

	log.Printf("Running memory bandwidth test (%d MB)", cfg.MemorySizeMB)
	read := MemoryReadBandwidth(cfg.MemorySizeMB)
	results.MemoryReadGBps = &read
	write := MemoryWriteBandwidth(cfg.MemorySizeMB)
	results.MemoryWriteGBps = &write

	log.Printf("Running disk I/O benchmark (%d MB)", cfg.DiskSizeMB)
	path, writeSpeed, err := DiskSequentialWrite(cfg.DiskSizeMB)
	if err != nil {
		log.Printf("Warning: Disk write benchmark failed: %v", err)
		return results
	}
	results.DiskWriteMBps = &writeSpeed
	readSpeed, err := DiskSequentialRead(path)
	if err != nil {
		log.Printf("Warning: Disk read benchmark failed: %v", err)
		return results
	}
	results.DiskReadMBps = &readSpeed

	return results
}
