package report

import (
	"fmt"
	"strings"

	"hwdoctor/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).MarginBottom(1)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(18)
	goodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	borderStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 2)
)

// Summary renders the post-scan terminal table.
func Summary(snap models.Snapshot, health models.HealthReport) string {
	var rows []string

	row := func(label, value string) {
		rows = append(rows, labelStyle.Render(label)+value)
	}

	row("CPU", fmt.Sprintf("%s | %dC/%dT | %.1f%% usage",
		snap.CPU.Brand, snap.CPU.PhysicalCores, snap.CPU.LogicalCores, snap.CPU.UsagePercent))
	row("RAM", fmt.Sprintf("%.2f GB %s | %.1f%% used",
		snap.Memory.TotalGB, snap.Memory.MemoryType, snap.Memory.UsagePercent))

	for i, disk := range snap.Disks {
		if i >= 2 {
			break
		}
		row(fmt.Sprintf("Disk (%s)", disk.Name),
			fmt.Sprintf("%.2f GB %s | SMART: %s", disk.SizeGB, disk.DiskType, disk.SmartStatus))
	}

	if len(snap.GPUs) > 0 {
		row("GPU", snap.GPUs[0].Name)
	}

	if snap.Battery.Present {
		row("Battery", fmt.Sprintf("%.1f%% (%s) | health %.1f%%",
			snap.Battery.ChargePercent, snap.Battery.Status, snap.Battery.HealthPercent))
	}

	row("Health Score", scoreStyle(health.Score).Render(fmt.Sprintf("%d/100", health.Score)))

	body := titleStyle.Render("System Health Summary") + "\n" + strings.Join(rows, "\n")
	return borderStyle.Render(body)
}

// Recommendations renders the severity-tagged advice lines.
func Recommendations(health models.HealthReport) string {
	var lines []string
	for _, rec := range health.Recommendations {
		var style lipgloss.Style
		switch rec.Severity {
		case models.SeverityCritical:
			style = criticalStyle
		case models.SeverityWarning:
			style = warnStyle
		default:
			style = goodStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("[%s] %s", rec.Severity, rec.Message)))
	}
	return strings.Join(lines, "\n")
}

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return goodStyle
	case score >= 60:
		return warnStyle
	default:
		return criticalStyle
	}
}
