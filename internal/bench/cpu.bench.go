// Package bench implements the timed micro-benchmarks whose scores are
// attached to a snapshot as opaque scalars.
package bench

import (
	"math"
	"runtime"
	"sync"
	"time"
)

const sieveLimit = 100_000

// sieveCount runs a sieve of Eratosthenes and returns the prime count,
// keeping the work purely CPU bound.
func sieveCount(limit int) int {
	sieve := make([]bool, limit)
	for i := 2; i*i < limit; i++ {
		if !sieve[i] {
			for j := i * i; j < limit; j += i {
				sieve[j] = true
			}
		}
	}
	count := 0
	for i := 2; i < limit; i++ {
		if !sieve[i] {
			count++
		}
	}
	return count
}

func sieveOps(duration time.Duration) int {
	ops := 0
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		sieveCount(sieveLimit)
		ops++
	}
	return ops
}

// CPUSingleCore returns a normalized single-core score: sieve
// iterations per second scaled by 50.
func CPUSingleCore(duration time.Duration) float64 {
	ops := sieveOps(duration)
	return round1(float64(ops) / duration.Seconds() * 50)
}

// CPUMultiCore runs the sieve on every logical CPU concurrently and
// returns the combined score.
func CPUMultiCore(duration time.Duration) float64 {
	cores := runtime.NumCPU()
	results := make([]int, cores)

	var wg sync.WaitGroup
	wg.Add(cores)
	for i := 0; i < cores; i++ {
		go func(slot int) {
			defer wg.Done()
			results[slot] = sieveOps(duration)
		}(i)
	}
	wg.Wait()

	total := 0
	for _, ops := range results {
		total += ops
	}
	return round1(float64(total) / duration.Seconds() * 50)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
