package collectors

import (
	"path"
	"strconv"
	"strings"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"
)

// BatteryCollector reads the host battery. Presence is authoritative
// from the first primary source that answers; when no source reports a
// battery the record stays at defaults and no enrichment runs.
type BatteryCollector struct {
	probe probe.Prober
}

func NewBatteryCollector(p probe.Prober) *BatteryCollector {
	return &BatteryCollector{probe: p}
}

func (c *BatteryCollector) Collect() models.BatteryInfo {
	data := models.BatteryInfo{HealthPercent: 100}

	for _, strategy := range []func(*models.BatteryInfo) bool{
		c.fromSysfs,
		c.fromPmset,
		c.fromWmic,
	} {
		if strategy(&data) {
			data.Present = true
			if data.PluggedIn {
				data.Status = models.BatteryCharging
			} else {
				data.Status = models.BatteryDischarging
			}
			return data
		}
	}
	return data
}

// fromSysfs reads the first /sys/class/power_supply/BAT* entry and,
// when the energy files are readable, computes measured health as
// 100 * full_charge / design.
func (c *BatteryCollector) fromSysfs(data *models.BatteryInfo) bool {
	matches := c.probe.Glob("/sys/class/power_supply/BAT*/capacity")
	if len(matches) == 0 {
		return false
	}
	base := path.Dir(matches[0])

	capacity, ok := probe.ReadTrimmed(c.probe, matches[0])
	if !ok {
		return false
	}
	data.ChargePercent = round1(parseFloat(capacity))

	if status, ok := probe.ReadTrimmed(c.probe, base+"/status"); ok {
		data.PluggedIn = status == "Charging" || status == "Full"
	}

	readMicro := func(name string) *int {
		s, ok := probe.ReadTrimmed(c.probe, base+"/"+name)
		if !ok {
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return nil
		}
		return intPtr(v)
	}

	// Remaining runtime from instantaneous draw; only meaningful when
	// the battery is actually discharging power.
	if energyNow := readMicro("energy_now"); energyNow != nil {
		if powerNow := readMicro("power_now"); powerNow != nil {
			data.MinutesRemaining = floatPtr(round1(float64(*energyNow) / float64(*powerNow) * 60))
		}
	}

	if design := readMicro("energy_full_design"); design != nil {
		data.DesignCapacityMWh = intPtr(*design / 1000)
		if full := readMicro("energy_full"); full != nil {
			data.FullChargeCapacityMWh = intPtr(*full / 1000)
			data.HealthPercent = round1(float64(*full) / float64(*design) * 100)
			data.HealthMeasured = true
		}
	}

	if cycles, ok := probe.ReadTrimmed(c.probe, base+"/cycle_count"); ok {
		if v, err := strconv.Atoi(cycles); err == nil && v > 0 {
			data.CycleCount = intPtr(v)
		}
	}
	return true
}

// fromPmset parses `pmset -g batt` and enriches from the power
// profiler when available.
func (c *BatteryCollector) fromPmset(data *models.BatteryInfo) bool {
	out, ok := c.probe.TryRun("pmset", "-g", "batt")
	if !ok || !strings.Contains(out, "InternalBattery") {
		return false
	}
	parsePmset(out, data)

	if prof, ok := c.probe.TryRun("system_profiler", "SPPowerDataType"); ok {
		parseProfilerPower(prof, data)
	}
	return true
}

// parsePmset reads charge, power source and the remaining-time
// estimate. The "(no estimate)" placeholder maps to absent, not zero.
func parsePmset(out string, data *models.BatteryInfo) {
	data.PluggedIn = strings.Contains(out, "'AC Power'")
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "InternalBattery") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if strings.HasSuffix(token, "%;") || strings.HasSuffix(token, "%") {
				data.ChargePercent = round1(parseFloat(strings.TrimSuffix(strings.TrimSuffix(token, ";"), "%")))
			}
		}
		if strings.Contains(line, "no estimate") {
			break
		}
		if idx := strings.Index(line, " remaining"); idx >= 0 {
			fields := strings.Fields(line[:idx])
			if len(fields) > 0 {
				if minutes, ok := parseClock(fields[len(fields)-1]); ok && minutes > 0 {
					data.MinutesRemaining = floatPtr(minutes)
				}
			}
		}
		break
	}
}

// parseClock converts "3:04" to minutes.
func parseClock(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return float64(h*60 + m), true
}

// parseProfilerPower reads cycle count and the measured maximum
// capacity from SPPowerDataType output.
func parseProfilerPower(out string, data *models.BatteryInfo) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Cycle Count:") {
			if v, err := strconv.Atoi(afterColon(line)); err == nil && v > 0 {
				data.CycleCount = intPtr(v)
			}
		}
		if strings.HasPrefix(line, "Maximum Capacity:") {
			if v := parseFloat(afterColon(line)); v > 0 {
				data.HealthPercent = round1(v)
				data.HealthMeasured = true
			}
		}
	}
}

// fromWmic parses the Win32_Battery table. Health is measured only
// when both capacity fields are reported, which many firmwares omit.
func (c *BatteryCollector) fromWmic(data *models.BatteryInfo) bool {
	out, ok := c.probe.TryRun("wmic", "path", "Win32_Battery", "get",
		"EstimatedChargeRemaining,BatteryStatus,DesignCapacity,FullChargeCapacity", "/format:list")
	if !ok {
		return false
	}
	return parseWmicBattery(out, data)
}

func parseWmicBattery(out string, data *models.BatteryInfo) bool {
	seen := false
	var design, full int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if v, found := strings.CutPrefix(line, "EstimatedChargeRemaining="); found && strings.TrimSpace(v) != "" {
			data.ChargePercent = round1(parseFloat(v))
			seen = true
		}
		if v, found := strings.CutPrefix(line, "BatteryStatus="); found {
			// Status 2 is "on AC power" per the Win32_Battery schema.
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				data.PluggedIn = n == 2
			}
		}
		if v, found := strings.CutPrefix(line, "DesignCapacity="); found {
			design, _ = strconv.Atoi(strings.TrimSpace(v))
		}
		if v, found := strings.CutPrefix(line, "FullChargeCapacity="); found {
			full, _ = strconv.Atoi(strings.TrimSpace(v))
		}
	}
	if seen && design > 0 {
		data.DesignCapacityMWh = intPtr(design)
		if full > 0 {
			data.FullChargeCapacityMWh = intPtr(full)
			data.HealthPercent = round1(float64(full) / float64(design) * 100)
			data.HealthMeasured = true
		}
	}
	return seen
}
