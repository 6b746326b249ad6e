package bench

import (
	"fmt"
	"io"
	"os"
	"time"
)

const chunkSize = 1024 * 1024

// DiskSequentialWrite writes sizeMB of data to a temp file with a
// final sync and returns the file path and speed in MB/s. The caller
// passes the path to DiskSequentialRead, which removes it.
func DiskSequentialWrite(sizeMB int) (string, float64, error) {
	f, err := os.CreateTemp("", "hwdoctor-bench-*.tmp")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create benchmark file: %w", err)
	}
	path := f.Name()

	chunk := make([]byte, chunkSize)
	for i := range chunk {
		chunk[i] = 'A'
	}

	start := time.Now()
	for i := 0; i < sizeMB; i++ {
		if _, err := f.Write(chunk); err != nil {
			f.Close()
			os.Remove(path)
			return "", 0, fmt.Errorf("failed to write benchmark file: %w", err)
		}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, fmt.Errorf("failed to sync benchmark file: %w", err)
	}
	elapsed := time.Since(start).Seconds()
	f.Close()

	if elapsed <= 0 {
		elapsed = 1e-9
	}
	return path, round2(float64(sizeMB) / elapsed), nil
}

// DiskSequentialRead reads the benchmark file back in 1 MB chunks,
// removes it, and returns the speed in MB/s.
func DiskSequentialRead(path string) (float64, error) {
	defer os.Remove(path)

	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat benchmark file: %w", err)
	}
	sizeMB := float64(info.Size()) / chunkSize

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open benchmark file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, chunkSize)
	start := time.Now()
	for {
		_, err := f.Read(buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read benchmark file: %w", err)
		}
	}
	elapsed := time.Since(start).Seconds()
	if elapsed <= 0 {
		elapsed = 1e-9
	}
	return round2(sizeMB / elapsed), nil
}
