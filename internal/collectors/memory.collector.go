package collectors

import (
	"log"
	"strconv"
	"strings"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/shirou/gopsutil/v3/mem"
)

var knownMemoryTypes = map[string]bool{
	"DDR3": true, "DDR4": true, "DDR5": true, "LPDDR4": true, "LPDDR5": true,
}

// smbiosMemoryTypes maps the WMI SMBIOSMemoryType codes we care about.
var smbiosMemoryTypes = map[int]string{
	20: "DDR", 21: "DDR2", 24: "DDR3", 26: "DDR4", 34: "DDR5",
}

// moduleMeta is the result of one memory-module inventory strategy.
type moduleMeta struct {
	memoryType string
	speedMHz   *int
	slotsUsed  int
	slotsTotal int
}

// MemoryCollector reads OS memory counters plus module metadata from
// a privileged platform inventory. Inventory failure of any kind falls
// back to defaults without failing the collection.
type MemoryCollector struct {
	probe probe.Prober
}

func NewMemoryCollector(p probe.Prober) *MemoryCollector {
	return &MemoryCollector{probe: p}
}

func (c *MemoryCollector) Collect() models.MemoryInfo {
	data := models.MemoryInfo{
		MemoryType:  "Unknown",
		ChannelMode: models.ChannelUnknown,
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("Warning: Could not read virtual memory counters: %v", err)
	} else {
		data.TotalGB = toGB(vm.Total)
		data.UsedGB = toGB(vm.Used)
		data.FreeGB = toGB(vm.Free)
		data.AvailableGB = toGB(vm.Available)
		data.UsagePercent = vm.UsedPercent
	}

	swap, err := mem.SwapMemory()
	if err != nil {
		log.Printf("Warning: Could not read swap counters: %v", err)
	} else {
		data.SwapTotalGB = toGB(swap.Total)
		data.SwapUsedGB = toGB(swap.Used)
		data.SwapPercent = swap.UsedPercent
	}

	// Module inventory strategies in fixed order; the first one whose
	// tool answers wins. All of them commonly need elevation and are
	// allowed to fail silently.
	for _, strategy := range []func() (moduleMeta, bool){
		c.tryDmidecode,
		c.tryWmic,
		c.trySystemProfiler,
	} {
		meta, ok := strategy()
		if !ok {
			continue
		}
		if meta.memoryType != "" {
			data.MemoryType = meta.memoryType
		}
		data.SpeedMHz = meta.speedMHz
		data.SlotsUsed = meta.slotsUsed
		data.SlotsTotal = meta.slotsTotal
		data.ChannelMode = models.ChannelModeFor(meta.slotsUsed)
		break
	}

	return data
}

func (c *MemoryCollector) tryDmidecode() (moduleMeta, bool) {
	out, ok := c.probe.TryRun("dmidecode", "-t", "memory")
	if !ok {
		return moduleMeta{}, false
	}
	return parseDmidecodeMemory(out)
}

func (c *MemoryCollector) tryWmic() (moduleMeta, bool) {
	out, ok := c.probe.TryRun("wmic", "memorychip", "get", "Capacity,Speed,SMBIOSMemoryType", "/format:list")
	if !ok {
		return moduleMeta{}, false
	}
	meta, ok := parseWmicMemory(out)
	if !ok {
		return moduleMeta{}, false
	}
	// Total slot count lives on the physical memory array. Best effort;
	// default to the populated count.
	meta.slotsTotal = meta.slotsUsed
	if arr, arrOK := c.probe.TryRun("wmic", "memphysical", "get", "MemoryDevices", "/format:list"); arrOK {
		for _, line := range strings.Split(arr, "\n") {
			line = strings.TrimSpace(line)
			if v, found := strings.CutPrefix(line, "MemoryDevices="); found {
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
					meta.slotsTotal = n
				}
			}
		}
	}
	return meta, true
}

func (c *MemoryCollector) trySystemProfiler() (moduleMeta, bool) {
	out, ok := c.probe.TryRun("system_profiler", "SPMemoryDataType")
	if !ok {
		return moduleMeta{}, false
	}
	return parseProfilerMemory(out)
}

// parseDmidecodeMemory scans `dmidecode -t memory` output. Grammar is
// line-prefix keyed: "Number Of Devices:", "Size:", "Speed:", "Type:".
func parseDmidecodeMemory(out string) (moduleMeta, bool) {
	meta := moduleMeta{}
	seen := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, "Number Of Devices:"):
			if n, err := strconv.Atoi(afterColon(line)); err == nil {
				meta.slotsTotal = n
				seen = true
			}
		case strings.HasPrefix(line, "Size:") && !strings.Contains(line, "No Module"):
			meta.slotsUsed++
			seen = true
		case strings.HasPrefix(line, "Speed:") && !strings.Contains(line, "Unknown"):
			fields := strings.Fields(afterColon(line))
			if len(fields) > 0 {
				if v, err := strconv.Atoi(fields[0]); err == nil {
					meta.speedMHz = intPtr(v)
				}
			}
		case strings.HasPrefix(line, "Type:") && !strings.Contains(line, "Unknown"):
			if t := afterColon(line); knownMemoryTypes[t] {
				meta.memoryType = t
			}
		}
	}
	return meta, seen
}

// parseWmicMemory scans `wmic memorychip` key=value output; one
// Capacity= entry per populated module.
func parseWmicMemory(out string) (moduleMeta, bool) {
	meta := moduleMeta{}
	seen := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if v, found := strings.CutPrefix(line, "Capacity="); found && strings.TrimSpace(v) != "" {
			meta.slotsUsed++
			seen = true
		}
		if v, found := strings.CutPrefix(line, "Speed="); found {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
				meta.speedMHz = intPtr(n)
			}
		}
		if v, found := strings.CutPrefix(line, "SMBIOSMemoryType="); found {
			if code, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				if t, known := smbiosMemoryTypes[code]; known {
					meta.memoryType = t
				}
			}
		}
	}
	return meta, seen
}

// parseProfilerMemory scans `system_profiler SPMemoryDataType` output.
// macOS does not expose the total slot count, so it mirrors the
// populated count.
func parseProfilerMemory(out string) (moduleMeta, bool) {
	meta := moduleMeta{}
	seen := false
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Size:") && !strings.Contains(line, "Empty"):
			meta.slotsUsed++
			seen = true
		case strings.HasPrefix(line, "Speed:"):
			fields := strings.Fields(afterColon(line))
			if len(fields) > 0 {
				if v, err := strconv.Atoi(fields[0]); err == nil {
					meta.speedMHz = intPtr(v)
				}
			}
		case strings.HasPrefix(line, "Type:"):
			if t := afterColon(line); knownMemoryTypes[t] {
				meta.memoryType = t
				seen = true
			}
		}
	}
	meta.slotsTotal = meta.slotsUsed
	return meta, seen
}
