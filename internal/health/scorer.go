// Package health derives an overall assessment from one hardware
// snapshot. Scoring is a pure function: no I/O, deterministic for
// identical input.
package health

import (
	"fmt"

	"hwdoctor/internal/config"
	"hwdoctor/internal/models"
)

// Deduction weights per fired condition.
const (
	deductCPUTempCritical = 20
	deductCPUTempWarning  = 10
	deductThrottling      = 15
	deductRAMCritical     = 15
	deductRAMWarning      = 8
	deductSmartFailed     = 30
	deductDiskTempWarning = 10
	deductPartitionFull   = 10
	deductBatteryHealth   = 15
)

// Score starts at 100 and applies independent threshold deductions,
// clamping the result to [0,100]. Conditions are evaluated in domain
// order (CPU, RAM, storage, battery) so the recommendation list is
// deterministic. The temperature and RAM checks are mutually exclusive
// pairs: a critical hit suppresses the warning for the same entity.
func Score(snap models.Snapshot, t config.Thresholds) models.HealthReport {
	score := 100
	var recs []models.Recommendation

	add := func(points int, severity, message string) {
		score -= points
		recs = append(recs, models.Recommendation{Severity: severity, Message: message})
	}

	cpu := snap.CPU
	if cpu.TemperatureC != nil {
		switch {
		case *cpu.TemperatureC > t.CPUTempCritical:
			add(deductCPUTempCritical, models.SeverityCritical,
				fmt.Sprintf("CPU temperature is dangerously high (%.1f°C). Check cooling immediately.", *cpu.TemperatureC))
		case *cpu.TemperatureC > t.CPUTempWarning:
			add(deductCPUTempWarning, models.SeverityWarning,
				fmt.Sprintf("CPU temperature is elevated (%.1f°C). Consider improving airflow.", *cpu.TemperatureC))
		}
	}
	if cpu.Throttling {
		add(deductThrottling, models.SeverityCritical,
			"CPU is thermal throttling, performance is being reduced to prevent damage.")
	}

	memory := snap.Memory
	switch {
	case memory.UsagePercent > t.RAMUsageCritical:
		add(deductRAMCritical, models.SeverityCritical,
			fmt.Sprintf("RAM usage is critically high (%.1f%%). Upgrade RAM or close applications.", memory.UsagePercent))
	case memory.UsagePercent > t.RAMUsageWarning:
		add(deductRAMWarning, models.SeverityWarning,
			fmt.Sprintf("RAM usage is high (%.1f%%). Consider adding more RAM.", memory.UsagePercent))
	}

	for _, disk := range snap.Disks {
		if disk.SmartStatus == models.SmartFailed {
			add(deductSmartFailed, models.SeverityCritical,
				fmt.Sprintf("Drive %s has FAILED S.M.A.R.T. status. Back up data immediately!", disk.Name))
		}
		if disk.SmartTemperatureC != nil && *disk.SmartTemperatureC > t.DiskTempWarning {
			add(deductDiskTempWarning, models.SeverityWarning,
				fmt.Sprintf("Drive %s is running hot (%.1f°C). Check case airflow.", disk.Name, *disk.SmartTemperatureC))
		}
		for _, part := range disk.Partitions {
			if part.UsagePercent > t.DiskUsageCritical {
				add(deductPartitionFull, models.SeverityCritical,
					fmt.Sprintf("Partition %s is nearly full (%.1f%%). Free up space.", part.Mountpoint, part.UsagePercent))
			}
		}
	}

	if snap.Battery.Present && snap.Battery.HealthPercent < t.BatteryHealthFair {
		add(deductBatteryHealth, models.SeverityWarning,
			fmt.Sprintf("Battery health is poor (%.0f%%). Consider replacing the battery.", snap.Battery.HealthPercent))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if len(recs) == 0 {
		recs = append(recs, models.Recommendation{
			Severity: models.SeverityGood,
			Message:  "All systems healthy! No issues detected.",
		})
	}

	return models.HealthReport{Score: score, Recommendations: recs}
}
