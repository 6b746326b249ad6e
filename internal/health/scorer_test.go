package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hwdoctor/internal/config"
	"hwdoctor/internal/models"
)

func defaultThresholds() config.Thresholds {
	return config.Thresholds{
		CPUTempWarning:    75,
		CPUTempCritical:   90,
		DiskTempWarning:   50,
		DiskTempCritical:  60,
		RAMUsageWarning:   75,
		RAMUsageCritical:  90,
		DiskUsageWarning:  80,
		DiskUsageCritical: 95,
		BatteryHealthGood: 80,
		BatteryHealthFair: 60,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestScoreAllHealthy(t *testing.T) {
	snap := models.Snapshot{
		CPU:    models.CPUInfo{TemperatureC: floatPtr(45)},
		Memory: models.MemoryInfo{UsagePercent: 40},
		Disks: []models.DiskInfo{{
			Name:        "/dev/sda",
			SmartStatus: models.SmartPassed,
			Partitions:  []models.PartitionInfo{{Mountpoint: "/", UsagePercent: 55}},
		}},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 100, report.Score)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, models.SeverityGood, report.Recommendations[0].Severity)
	assert.Equal(t, "All systems healthy! No issues detected.", report.Recommendations[0].Message)
}

func TestScoreOverheatingAndThrottling(t *testing.T) {
	snap := models.Snapshot{
		CPU: models.CPUInfo{
			TemperatureC: floatPtr(95),
			Throttling:   true,
		},
		Memory: models.MemoryInfo{UsagePercent: 40},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 65, report.Score)
	require.Len(t, report.Recommendations, 2)
	assert.Equal(t, models.SeverityCritical, report.Recommendations[0].Severity)
	assert.Contains(t, report.Recommendations[0].Message, "dangerously high")
	assert.Contains(t, report.Recommendations[1].Message, "thermal throttling")
}

func TestScoreCriticalSuppressesWarning(t *testing.T) {
	snap := models.Snapshot{
		CPU:    models.CPUInfo{TemperatureC: floatPtr(95)},
		Memory: models.MemoryInfo{UsagePercent: 92},
	}

	report := Score(snap, defaultThresholds())

	// One critical per entity, never a warning stacked on top.
	assert.Equal(t, 100-20-15, report.Score)
	require.Len(t, report.Recommendations, 2)
	for _, rec := range report.Recommendations {
		assert.Equal(t, models.SeverityCritical, rec.Severity)
	}
}

func TestScoreWarningTier(t *testing.T) {
	snap := models.Snapshot{
		CPU:    models.CPUInfo{TemperatureC: floatPtr(80)},
		Memory: models.MemoryInfo{UsagePercent: 80},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 100-10-8, report.Score)
	require.Len(t, report.Recommendations, 2)
	for _, rec := range report.Recommendations {
		assert.Equal(t, models.SeverityWarning, rec.Severity)
	}
}

func TestScoreFailingDisk(t *testing.T) {
	snap := models.Snapshot{
		Memory: models.MemoryInfo{UsagePercent: 40},
		Disks: []models.DiskInfo{{
			Name:        "/dev/sda",
			SmartStatus: models.SmartFailed,
			Partitions:  []models.PartitionInfo{{Mountpoint: "/", UsagePercent: 97}},
		}},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 60, report.Score)
	require.Len(t, report.Recommendations, 2)
	assert.Contains(t, report.Recommendations[0].Message, "FAILED S.M.A.R.T.")
	assert.Contains(t, report.Recommendations[1].Message, "nearly full")
}

func TestScoreHotDiskPerDisk(t *testing.T) {
	snap := models.Snapshot{
		Disks: []models.DiskInfo{
			{Name: "/dev/sda", SmartStatus: models.SmartPassed, SmartTemperatureC: floatPtr(55)},
			{Name: "/dev/sdb", SmartStatus: models.SmartPassed, SmartTemperatureC: floatPtr(58)},
		},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 100-10-10, report.Score)
	require.Len(t, report.Recommendations, 2)
}

func TestScoreBatteryHealth(t *testing.T) {
	worn := models.Snapshot{
		Battery: models.BatteryInfo{Present: true, HealthPercent: 50, HealthMeasured: true},
	}
	report := Score(worn, defaultThresholds())
	assert.Equal(t, 85, report.Score)
	require.Len(t, report.Recommendations, 1)
	assert.Equal(t, models.SeverityWarning, report.Recommendations[0].Severity)

	// A desktop without a battery is never penalized, even though the
	// zero-value health field sits below every threshold.
	absent := models.Snapshot{
		Battery: models.BatteryInfo{Present: false, HealthPercent: 0},
	}
	report = Score(absent, defaultThresholds())
	assert.Equal(t, 100, report.Score)
}

func TestScoreClampsAtZero(t *testing.T) {
	snap := models.Snapshot{
		CPU: models.CPUInfo{
			TemperatureC: floatPtr(99),
			Throttling:   true,
		},
		Memory: models.MemoryInfo{UsagePercent: 95},
		Disks: []models.DiskInfo{
			{
				Name:              "/dev/sda",
				SmartStatus:       models.SmartFailed,
				SmartTemperatureC: floatPtr(70),
				Partitions: []models.PartitionInfo{
					{Mountpoint: "/", UsagePercent: 99},
					{Mountpoint: "/home", UsagePercent: 98},
				},
			},
			{Name: "/dev/sdb", SmartStatus: models.SmartFailed},
		},
		Battery: models.BatteryInfo{Present: true, HealthPercent: 40},
	}

	report := Score(snap, defaultThresholds())

	assert.Equal(t, 0, report.Score)
	assert.NotEmpty(t, report.Recommendations)
}

func TestScoreMissingTemperatureIsNeutral(t *testing.T) {
	snap := models.Snapshot{
		CPU:    models.CPUInfo{TemperatureC: nil},
		Memory: models.MemoryInfo{UsagePercent: 40},
	}

	report := Score(snap, defaultThresholds())
	assert.Equal(t, 100, report.Score)
}

func TestScoreDeterministic(t *testing.T) {
	snap := models.Snapshot{
		CPU:    models.CPUInfo{TemperatureC: floatPtr(80), Throttling: true},
		Memory: models.MemoryInfo{UsagePercent: 92},
		Disks: []models.DiskInfo{{
			Name:              "/dev/nvme0n1",
			SmartStatus:       models.SmartFailed,
			SmartTemperatureC: floatPtr(61),
			Partitions:        []models.PartitionInfo{{Mountpoint: "/", UsagePercent: 96}},
		}},
		Battery: models.BatteryInfo{Present: true, HealthPercent: 55},
	}

	first := Score(snap, defaultThresholds())
	second := Score(snap, defaultThresholds())

	assert.Equal(t, first, second)
}
