package collectors

import (
	"log"
	"strconv"
	"strings"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/jaypipes/ghw"
)

// nvidiaSmiFields is the fixed comma-separated field set requested
// from nvidia-smi; parsing below is positional against this order.
const nvidiaSmiFields = "name,index,memory.total,memory.used,memory.free," +
	"utilization.gpu,utilization.memory,temperature.gpu," +
	"fan.speed,power.draw,power.limit,driver_version"

// GPUCollector resolves graphics devices through an ordered chain of
// sources. Each tier runs only when every earlier tier returned zero
// devices; when all of them do, a single sentinel record is emitted so
// consumers never see an empty list.
type GPUCollector struct {
	probe probe.Prober
}

func NewGPUCollector(p probe.Prober) *GPUCollector {
	return &GPUCollector{probe: p}
}

func (c *GPUCollector) Collect() []models.GPUInfo {
	for _, source := range []func() []models.GPUInfo{
		c.fromNvidiaSmi,
		c.fromRocmSmi,
		c.fromPlatformInventory,
	} {
		if gpus := source(); len(gpus) > 0 {
			return gpus
		}
	}
	return []models.GPUInfo{models.SentinelGPU()}
}

// fromNvidiaSmi parses the vendor CLI's CSV output positionally.
// The literal "[N/A]" sentinel maps to an absent value.
func (c *GPUCollector) fromNvidiaSmi() []models.GPUInfo {
	out, ok := c.probe.TryRun("nvidia-smi",
		"--query-gpu="+nvidiaSmiFields,
		"--format=csv,noheader,nounits")
	if !ok {
		return nil
	}
	return parseNvidiaSmi(out)
}

func parseNvidiaSmi(out string) []models.GPUInfo {
	var gpus []models.GPUInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		parts := strings.Split(line, ",")
		if len(parts) < 12 {
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		g := models.GPUInfo{
			Name:          parts[0],
			DriverVersion: "N/A",
		}
		if idx, err := strconv.Atoi(parts[1]); err == nil {
			g.Index = idx
		}
		if v := optionalFloat(parts[2]); v != nil {
			g.VRAMTotalMB = *v
		}
		if v := optionalFloat(parts[3]); v != nil {
			g.VRAMUsedMB = *v
		}
		if v := optionalFloat(parts[4]); v != nil {
			g.VRAMFreeMB = *v
		}
		if v := optionalFloat(parts[5]); v != nil {
			g.UtilizationPercent = *v
		}
		if v := optionalFloat(parts[6]); v != nil {
			g.MemUtilizationPercent = *v
		}
		g.TemperatureC = optionalFloat(parts[7])
		g.FanSpeedPercent = optionalFloat(parts[8])
		g.PowerDrawW = optionalFloat(parts[9])
		g.PowerLimitW = optionalFloat(parts[10])
		if parts[11] != "" && parts[11] != "[N/A]" {
			g.DriverVersion = parts[11]
		}
		gpus = append(gpus, g)
	}
	return gpus
}

// fromRocmSmi scans the AMD CLI's CSV output. Rows are
// "device,Card series,..."; only inventory-grade data is available.
func (c *GPUCollector) fromRocmSmi() []models.GPUInfo {
	out, ok := c.probe.TryRun("rocm-smi", "--showproductname", "--csv")
	if !ok {
		return nil
	}
	return parseRocmSmi(out)
}

func parseRocmSmi(out string) []models.GPUInfo {
	var gpus []models.GPUInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if !strings.HasPrefix(line, "card") {
			continue
		}
		fields := strings.Split(line, ",")
		name := "AMD GPU"
		if len(fields) >= 2 && strings.TrimSpace(fields[1]) != "" {
			name = strings.TrimSpace(fields[1])
		}
		gpus = append(gpus, models.GPUInfo{
			Name:          name,
			Index:         len(gpus),
			DriverVersion: "N/A",
		})
	}
	return gpus
}

// fromPlatformInventory falls back to OS-native inventory: the PCI bus
// scan, the WMI video controller table, the macOS display profiler,
// then a raw lspci scan. Name (and sometimes VRAM) only.
func (c *GPUCollector) fromPlatformInventory() []models.GPUInfo {
	for _, source := range []func() []models.GPUInfo{
		c.fromPCI,
		c.fromWmic,
		c.fromSystemProfiler,
		c.fromLspci,
	} {
		if gpus := source(); len(gpus) > 0 {
			return gpus
		}
	}
	return nil
}

func (c *GPUCollector) fromPCI() []models.GPUInfo {
	info, err := ghw.GPU()
	if err != nil || info == nil {
		if err != nil {
			log.Printf("Warning: PCI graphics scan failed: %v", err)
		}
		return nil
	}
	var gpus []models.GPUInfo
	for _, card := range info.GraphicsCards {
		name := "Unknown GPU"
		if card.DeviceInfo != nil && card.DeviceInfo.Product != nil && card.DeviceInfo.Product.Name != "" {
			name = card.DeviceInfo.Product.Name
		}
		gpus = append(gpus, models.GPUInfo{
			Name:          name,
			Index:         len(gpus),
			DriverVersion: "N/A",
		})
	}
	return gpus
}

func (c *GPUCollector) fromWmic() []models.GPUInfo {
	out, ok := c.probe.TryRun("wmic", "path", "win32_VideoController", "get", "Name,AdapterRAM,DriverVersion", "/format:list")
	if !ok {
		return nil
	}
	return parseWmicGPU(out)
}

func parseWmicGPU(out string) []models.GPUInfo {
	var gpus []models.GPUInfo
	current := models.GPUInfo{DriverVersion: "N/A"}
	flush := func() {
		if current.Name != "" {
			current.Index = len(gpus)
			gpus = append(gpus, current)
		}
		current = models.GPUInfo{DriverVersion: "N/A"}
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if v, found := strings.CutPrefix(line, "Name="); found {
			current.Name = strings.TrimSpace(v)
		}
		if v, found := strings.CutPrefix(line, "AdapterRAM="); found {
			if raw, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && raw > 0 {
				current.VRAMTotalMB = round2(raw / (1024 * 1024))
			}
		}
		if v, found := strings.CutPrefix(line, "DriverVersion="); found && strings.TrimSpace(v) != "" {
			current.DriverVersion = strings.TrimSpace(v)
		}
	}
	flush()
	return gpus
}

func (c *GPUCollector) fromSystemProfiler() []models.GPUInfo {
	out, ok := c.probe.TryRun("system_profiler", "SPDisplaysDataType")
	if !ok {
		return nil
	}
	return parseProfilerGPU(out)
}

// parseProfilerGPU scans SPDisplaysDataType output: a "Chipset Model:"
// line opens a device, a following "VRAM" line carries total memory in
// GB.
func parseProfilerGPU(out string) []models.GPUInfo {
	var gpus []models.GPUInfo
	var current *models.GPUInfo
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Chipset Model:") {
			if current != nil {
				gpus = append(gpus, *current)
			}
			current = &models.GPUInfo{
				Name:          afterColon(line),
				Index:         len(gpus),
				DriverVersion: "N/A",
			}
			continue
		}
		if current != nil && strings.Contains(line, "VRAM") {
			fields := strings.Fields(afterColon(line))
			if len(fields) > 0 {
				if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
					current.VRAMTotalMB = v * 1024
				}
			}
		}
	}
	if current != nil {
		gpus = append(gpus, *current)
	}
	return gpus
}

func (c *GPUCollector) fromLspci() []models.GPUInfo {
	out, ok := c.probe.TryRun("lspci")
	if !ok {
		return nil
	}
	var gpus []models.GPUInfo
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "VGA") && !strings.Contains(line, "3D") && !strings.Contains(line, "Display") {
			continue
		}
		name := line
		if idx := strings.Index(line, ": "); idx >= 0 {
			name = line[idx+2:]
		}
		gpus = append(gpus, models.GPUInfo{
			Name:          strings.TrimSpace(name),
			Index:         len(gpus),
			DriverVersion: "N/A",
		})
	}
	return gpus
}
