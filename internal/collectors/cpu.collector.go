package collectors

import (
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
)

// tempSensorPriority is the fixed order of sensor groups consulted for
// the CPU temperature. The first group with a reading wins.
var tempSensorPriority = []string{"coretemp", "cpu_thermal", "k10temp", "acpitz"}

const (
	overallSampleWindow = time.Second
	perCoreSampleWindow = 500 * time.Millisecond
)

// CPUCollector combines static processor identity with live metrics.
// Identity is fetched once at construction and treated as immutable
// for the collector's lifetime.
type CPUCollector struct {
	probe probe.Prober

	brand         string
	advertisedMHz *float64
	l2CacheKB     *int
}

func NewCPUCollector(p probe.Prober) *CPUCollector {
	c := &CPUCollector{probe: p, brand: "Unknown"}

	infos, err := cpu.Info()
	if err != nil {
		log.Printf("Warning: Could not read CPU identification: %v", err)
		return c
	}
	c.applyIdentity(infos)
	return c
}

// applyIdentity records the static processor identity from the first
// info entry. An empty list leaves the defaults in place.
func (c *CPUCollector) applyIdentity(infos []cpu.InfoStat) {
	if len(infos) == 0 {
		log.Printf("Warning: CPU identification returned no entries")
		return
	}
	info := infos[0]
	if info.ModelName != "" {
		c.brand = info.ModelName
	}
	if info.Mhz > 0 {
		c.advertisedMHz = floatPtr(round2(info.Mhz))
	}
	if info.CacheSize > 0 {
		c.l2CacheKB = intPtr(int(info.CacheSize))
	}
}

// Collect samples live CPU metrics. The overall utilization owns a
// 1-second window and the per-core figures an independent 0.5-second
// window; the two samples are not synchronized.
func (c *CPUCollector) Collect() models.CPUInfo {
	data := models.CPUInfo{
		Brand:        c.brand,
		Architecture: runtime.GOARCH,
		Bits:         strconv.IntSize,

		AdvertisedMHz: c.advertisedMHz,
		L2CacheKB:     c.l2CacheKB,
		L3CacheKB:     c.l3CacheKB(),
	}

	physical, err := cpu.Counts(false)
	if err != nil || physical < 1 {
		physical = 1
	}
	logical, err := cpu.Counts(true)
	if err != nil || logical < physical {
		logical = physical
	}
	data.PhysicalCores = physical
	data.LogicalCores = logical

	if pct, err := cpu.Percent(overallSampleWindow, false); err == nil && len(pct) > 0 {
		data.UsagePercent = clampPercent(round1(pct[0]))
	} else if err != nil {
		log.Printf("Warning: Could not sample CPU usage: %v", err)
	}

	if perCore, err := cpu.Percent(perCoreSampleWindow, true); err == nil {
		data.PerCoreUsage = make([]float64, len(perCore))
		for i, v := range perCore {
			data.PerCoreUsage[i] = clampPercent(round1(v))
		}
	} else {
		log.Printf("Warning: Could not sample per-core CPU usage: %v", err)
	}

	data.CurrentMHz, data.MinMHz, data.MaxMHz = c.frequencies()
	data.TemperatureC = c.temperature()
	data.Throttling = detectThrottling(data.CurrentMHz, data.MaxMHz, data.TemperatureC)
	data.CtxSwitches, data.Interrupts = c.kernelCounters()

	return data
}

// UsageHistory emits utilization samples at the given interval until
// duration elapses, then closes the channel. Each call re-samples live
// state; the sequence is finite and not restartable.
func (c *CPUCollector) UsageHistory(duration, interval time.Duration) <-chan float64 {
	ch := make(chan float64)
	go func() {
		defer close(ch)
		deadline := time.Now().Add(duration)
		for time.Now().Before(deadline) {
			pct, err := cpu.Percent(interval, false)
			if err != nil || len(pct) == 0 {
				return
			}
			ch <- clampPercent(round1(pct[0]))
		}
	}()
	return ch
}

// frequencies reads the cpufreq sysfs values (kHz) for the first core.
// Absence of the cpufreq driver leaves all three nil.
func (c *CPUCollector) frequencies() (cur, min, max *float64) {
	read := func(name string) *float64 {
		s, ok := probe.ReadTrimmed(c.probe, "/sys/devices/system/cpu/cpu0/cpufreq/"+name)
		if !ok {
			return nil
		}
		khz, err := strconv.ParseFloat(s, 64)
		if err != nil || khz <= 0 {
			return nil
		}
		return floatPtr(round2(khz / 1000))
	}
	return read("scaling_cur_freq"), read("cpuinfo_min_freq"), read("cpuinfo_max_freq")
}

func (c *CPUCollector) temperature() *float64 {
	// gopsutil may return partial readings alongside a warning error;
	// use whatever came back.
	stats, _ := host.SensorsTemperatures()
	if len(stats) == 0 {
		return nil
	}
	for _, group := range tempSensorPriority {
		for _, st := range stats {
			if strings.HasPrefix(strings.ToLower(st.SensorKey), group) && st.Temperature > 0 {
				return floatPtr(round1(st.Temperature))
			}
		}
	}
	return nil
}

// detectThrottling derives the throttling flag: the core must be
// running below 75% of its maximum frequency while hotter than 85°C.
// Either value missing means false.
func detectThrottling(cur, max, temp *float64) bool {
	if cur == nil || max == nil || temp == nil || *max <= 0 {
		return false
	}
	return *cur / *max < 0.75 && *temp > 85
}

// kernelCounters scrapes context switch and interrupt totals from
// /proc/stat; zero on platforms without it.
func (c *CPUCollector) kernelCounters() (ctx, intr uint64) {
	data, ok := c.probe.TryRead("/proc/stat")
	if !ok {
		return 0, 0
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "ctxt":
			ctx, _ = strconv.ParseUint(fields[1], 10, 64)
		case "intr":
			intr, _ = strconv.ParseUint(fields[1], 10, 64)
		}
	}
	return ctx, intr
}

// l3CacheKB parses the sysfs cache size of the last-level cache,
// e.g. "12288K" or "16M".
func (c *CPUCollector) l3CacheKB() *int {
	s, ok := probe.ReadTrimmed(c.probe, "/sys/devices/system/cpu/cpu0/cache/index3/size")
	if !ok || s == "" {
		return nil
	}
	mult := 1
	switch {
	case strings.HasSuffix(s, "K"):
		s = strings.TrimSuffix(s, "K")
	case strings.HasSuffix(s, "M"):
		s = strings.TrimSuffix(s, "M")
		mult = 1024
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return nil
	}
	return intPtr(v * mult)
}
