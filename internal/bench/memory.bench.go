package bench

import "time"

// MemoryWriteBandwidth allocates and fills a sizeMB buffer of floats
// and returns the write bandwidth in GB/s.
func MemoryWriteBandwidth(sizeMB int) float64 {
	elements := sizeMB * 1024 * 1024 / 8
	start := time.Now()
	buf := make([]float64, elements)
	for i := range buf {
		buf[i] = 1
	}
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return round2(float64(sizeMB) / 1024 / elapsed)
}

// MemoryReadBandwidth sums a pre-filled sizeMB buffer and returns the
// read bandwidth in GB/s.
func MemoryReadBandwidth(sizeMB int) float64 {
	elements := sizeMB * 1024 * 1024 / 8
	buf := make([]float64, elements)
	for i := range buf {
		buf[i] = 1
	}

	start := time.Now()
	sum := 0.0
	for _, v := range buf {
		sum += v
	}
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 || sum == 0 {
		return 0
	}
	return round2(float64(sizeMB) / 1024 / elapsed)
}
