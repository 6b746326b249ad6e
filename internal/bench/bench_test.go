package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSieveCount(t *testing.T) {
	assert.Equal(t, 25, sieveCount(100))
	assert.Equal(t, 168, sieveCount(1000))
}

func TestCPUSingleCoreShortRun(t *testing.T) {
	score := CPUSingleCore(50 * time.Millisecond)
	assert.Greater(t, score, 0.0)
}

func TestCPUMultiCoreShortRun(t *testing.T) {
	score := CPUMultiCore(50 * time.Millisecond)
	assert.Greater(t, score, 0.0)
}

func TestMemoryBandwidth(t *testing.T) {
	write := MemoryWriteBandwidth(16)
	read := MemoryReadBandwidth(16)
	assert.Greater(t, write, 0.0)
	assert.Greater(t, read, 0.0)
}

func TestDiskSequentialRoundTrip(t *testing.T) {
	path, writeMBps, err := DiskSequentialWrite(4)
	require.NoError(t, err)
	assert.Greater(t, writeMBps, 0.0)

	readMBps, err := DiskSequentialRead(path)
	require.NoError(t, err)
	assert.Greater(t, readMBps, 0.0)
}
