package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"
)

func floatPtr(v float64) *float64 { return &v }

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		ID:          "test-snapshot",
		CollectedAt: time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC),
		System: models.SystemOverview{
			Hostname: "workbench",
			OS:       "ubuntu 24.04",
		},
		CPU: models.CPUInfo{
			Brand:         "Intel(R) Core(TM) i7-10700K",
			PhysicalCores: 8,
			LogicalCores:  16,
			UsagePercent:  23.5,
			TemperatureC:  floatPtr(54),
		},
		Memory: models.MemoryInfo{
			TotalGB:      32,
			UsedGB:       12.4,
			UsagePercent: 38.8,
			MemoryType:   "DDR4",
			ChannelMode:  models.ChannelDual,
		},
		Disks: []models.DiskInfo{{
			Name:        "/dev/nvme0n1",
			Model:       "Samsung SSD 970 EVO",
			DiskType:    models.DiskTypeNVMe,
			SizeGB:      931.51,
			SmartStatus: models.SmartPassed,
			Partitions: []models.PartitionInfo{{
				Device:       "/dev/nvme0n1p2",
				Mountpoint:   "/",
				Filesystem:   "ext4",
				TotalGB:      911.2,
				UsedGB:       120.7,
				UsagePercent: 13.2,
			}},
		}},
		GPUs: []models.GPUInfo{{
			Name:          "NVIDIA GeForce RTX 3080",
			VRAMTotalMB:   10240,
			DriverVersion: "535.154.05",
		}},
		Battery: models.BatteryInfo{
			Present:       true,
			ChargePercent: 85,
			HealthPercent: 92,
		},
		Interfaces: []models.NetworkInterfaceInfo{{
			Name: "eth0",
			MAC:  "aa:bb:cc:dd:ee:ff",
			IPv4: "192.168.1.42",
			IsUp: true,
		}},
	}
}

func sampleHealth() models.HealthReport {
	return models.HealthReport{
		Score: 100,
		Recommendations: []models.Recommendation{{
			Severity: models.SeverityGood,
			Message:  "All systems healthy! No issues detected.",
		}},
	}
}

func TestHTMLReporterRender(t *testing.T) {
	r, err := NewHTMLReporter("PC Hardware Analysis Report")
	require.NoError(t, err)

	body, err := r.Render(sampleSnapshot(), sampleHealth())
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "PC Hardware Analysis Report")
	assert.Contains(t, html, "workbench")
	assert.Contains(t, html, "Intel(R) Core(TM) i7-10700K")
	assert.Contains(t, html, "Samsung SSD 970 EVO")
	assert.Contains(t, html, "NVIDIA GeForce RTX 3080")
	assert.Contains(t, html, "192.168.1.42")
	assert.Contains(t, html, "100")
}

func TestHTMLReporterRenderAssumedBatteryHealth(t *testing.T) {
	r, err := NewHTMLReporter("report")
	require.NoError(t, err)

	snap := sampleSnapshot()
	snap.Battery.HealthMeasured = false

	body, err := r.Render(snap, sampleHealth())
	require.NoError(t, err)
	assert.Contains(t, string(body), "(assumed)")
}

func TestHTMLReporterGenerate(t *testing.T) {
	r, err := NewHTMLReporter("report")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, r.Generate(sampleSnapshot(), sampleHealth(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestScoreClass(t *testing.T) {
	assert.Equal(t, "good", scoreClass(95))
	assert.Equal(t, "good", scoreClass(80))
	assert.Equal(t, "warning", scoreClass(79))
	assert.Equal(t, "warning", scoreClass(60))
	assert.Equal(t, "critical", scoreClass(59))
}

func TestConvertPDFWithoutTool(t *testing.T) {
	err := ConvertPDF(probe.NewFake(), "in.html", "out.pdf")
	assert.Error(t, err)
}

func TestSummaryRendersKeyRows(t *testing.T) {
	out := Summary(sampleSnapshot(), sampleHealth())
	assert.Contains(t, out, "Intel(R) Core(TM) i7-10700K")
	assert.Contains(t, out, "NVIDIA GeForce RTX 3080")

	recs := Recommendations(sampleHealth())
	assert.Contains(t, recs, "All systems healthy")
}
