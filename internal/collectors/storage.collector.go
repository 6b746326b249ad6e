package collectors

import (
	"log"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/disk"
)

// Fixed patterns for deriving the physical base device from a
// partition device path.
var (
	nvmePartPattern   = regexp.MustCompile(`^(/dev/(?:nvme|mmcblk|loop)\d+)p\d+$`)
	posixPartPattern  = regexp.MustCompile(`^(/dev/[a-z]+)\d+$`)
	darwinPartPattern = regexp.MustCompile(`^(/dev/disk\d+)s\d+$`)
)

// StorageCollector enumerates mounted partitions, groups them into
// physical disks, and enriches each disk with type, identity, SMART
// health and IO counters. Every enrichment degrades independently.
type StorageCollector struct {
	probe probe.Prober
}

func NewStorageCollector(p probe.Prober) *StorageCollector {
	return &StorageCollector{probe: p}
}

func (c *StorageCollector) Collect() []models.DiskInfo {
	partitions, err := disk.Partitions(false)
	if err != nil {
		log.Printf("Warning: Could not enumerate partitions: %v", err)
		return nil
	}

	grouped := groupPartitions(runtime.GOOS, partitions, func(mountpoint string) (*disk.UsageStat, error) {
		return disk.Usage(mountpoint)
	})

	inventory := c.blockInventory()
	ioCounters, err := disk.IOCounters()
	if err != nil {
		log.Printf("Warning: Could not read disk IO counters: %v", err)
	}

	disks := make([]models.DiskInfo, 0, len(grouped))
	for _, d := range grouped {
		c.enrichIdentity(d, inventory)
		d.DiskType = c.detectDiskType(d, inventory)
		d.SmartStatus, d.SmartTemperatureC = c.smartData(d.Name)
		matchIOCounters(d, ioCounters)

		disks = append(disks, *d)
	}
	c.enrichFromWmic(disks)
	return disks
}

// groupPartitions folds the mounted-partition table into per-disk
// records keyed by base device, preserving first-seen order. SizeGB is
// the sum of the partition totals. A mountpoint whose usage cannot be
// read is skipped, not fatal to the run.
func groupPartitions(goos string, partitions []disk.PartitionStat, usage func(string) (*disk.UsageStat, error)) []*models.DiskInfo {
	grouped := make(map[string]*models.DiskInfo)
	var order []string
	for _, part := range partitions {
		u, err := usage(part.Mountpoint)
		if err != nil {
			log.Printf("Warning: Could not query usage for %s: %v", part.Mountpoint, err)
			continue
		}

		base := baseDevice(goos, part.Device)
		d, ok := grouped[base]
		if !ok {
			d = &models.DiskInfo{
				Name:        base,
				Model:       "Unknown",
				Serial:      "Unknown",
				DiskType:    models.DiskTypeUnknown,
				SmartStatus: models.SmartUnknown,
			}
			grouped[base] = d
			order = append(order, base)
		}
		d.Partitions = append(d.Partitions, models.PartitionInfo{
			Device:       part.Device,
			Mountpoint:   part.Mountpoint,
			Filesystem:   part.Fstype,
			TotalGB:      toGB(u.Total),
			UsedGB:       toGB(u.Used),
			FreeGB:       toGB(u.Free),
			UsagePercent: u.UsedPercent,
		})
	}

	result := make([]*models.DiskInfo, 0, len(order))
	for _, base := range order {
		d := grouped[base]
		var total float64
		for _, p := range d.Partitions {
			total += p.TotalGB
		}
		d.SizeGB = round2(total)
		result = append(result, d)
	}
	return result
}

// baseDevice derives the physical disk key for a partition device.
// Windows keys on the drive letter; POSIX strips the trailing
// partition-number suffix.
func baseDevice(goos, device string) string {
	if goos == "windows" {
		if len(device) >= 2 {
			return device[:2]
		}
		return device
	}
	if m := nvmePartPattern.FindStringSubmatch(device); m != nil {
		return m[1]
	}
	if m := darwinPartPattern.FindStringSubmatch(device); m != nil {
		return m[1]
	}
	if m := posixPartPattern.FindStringSubmatch(device); m != nil {
		return m[1]
	}
	return device
}

// blockInventory reads the ghw block device list once per collection.
// nil means the inventory is unavailable on this platform.
func (c *StorageCollector) blockInventory() *ghw.BlockInfo {
	info, err := ghw.Block()
	if err != nil {
		log.Printf("Warning: Could not read block device inventory: %v", err)
		return nil
	}
	return info
}

// enrichIdentity fills model and serial from the block inventory when
// a matching physical disk exists.
func (c *StorageCollector) enrichIdentity(d *models.DiskInfo, inventory *ghw.BlockInfo) {
	bd := inventoryDisk(d, inventory)
	if bd == nil {
		return
	}
	if bd.Model != "" && bd.Model != "unknown" {
		d.Model = bd.Model
	}
	if bd.SerialNumber != "" && bd.SerialNumber != "unknown" {
		d.Serial = bd.SerialNumber
	}
}

// inventoryDisk finds the physical disk backing a grouped record,
// first by device name, then by partition mount point. The mount point
// is the only key shared with the inventory when the group key is a
// drive letter: ghw enumerates physical drives, never letters.
func inventoryDisk(d *models.DiskInfo, inventory *ghw.BlockInfo) *ghw.Disk {
	if inventory == nil {
		return nil
	}
	short := shortName(d.Name)
	for _, bd := range inventory.Disks {
		if bd.Name == short {
			return bd
		}
	}
	mounts := make(map[string]bool, len(d.Partitions))
	for _, p := range d.Partitions {
		mounts[trimMount(p.Mountpoint)] = true
	}
	for _, bd := range inventory.Disks {
		for _, part := range bd.Partitions {
			if part.MountPoint != "" && mounts[trimMount(part.MountPoint)] {
				return bd
			}
		}
	}
	return nil
}

// trimMount normalizes "C:\" vs "C:" style mount point spellings.
func trimMount(mountpoint string) string {
	return strings.TrimRight(mountpoint, `\/`)
}

// detectDiskType resolves HDD/SSD/NVMe through a three-tier check:
// the Linux rotational flag, the ghw drive type, then a diskutil
// keyword scan. Unknown when every tier comes up empty.
func (c *StorageCollector) detectDiskType(d *models.DiskInfo, inventory *ghw.BlockInfo) string {
	base := d.Name
	short := shortName(base)

	// Tier 1: sysfs rotational flag.
	if flag, ok := probe.ReadTrimmed(c.probe, "/sys/block/"+short+"/queue/rotational"); ok {
		if flag == "1" {
			return models.DiskTypeHDD
		}
		if strings.Contains(short, "nvme") {
			return models.DiskTypeNVMe
		}
		return models.DiskTypeSSD
	}
	if strings.Contains(short, "nvme") {
		return models.DiskTypeNVMe
	}

	// Tier 2: block inventory drive type.
	if bd := inventoryDisk(d, inventory); bd != nil {
		if bd.StorageController == ghw.STORAGE_CONTROLLER_NVME {
			return models.DiskTypeNVMe
		}
		switch bd.DriveType {
		case ghw.DRIVE_TYPE_SSD:
			return models.DiskTypeSSD
		case ghw.DRIVE_TYPE_HDD:
			return models.DiskTypeHDD
		}
	}

	// Tier 3: diskutil keyword scan (macOS).
	if out, ok := c.probe.TryRun("diskutil", "info", base); ok {
		if strings.Contains(out, "Solid State") {
			return models.DiskTypeSSD
		}
		return models.DiskTypeHDD
	}

	return models.DiskTypeUnknown
}

// wmicDrive is one physical drive row from the WMI disk table.
type wmicDrive struct {
	model         string
	serial        string
	interfaceType string
}

// enrichFromWmic fills identity and type for disks the block inventory
// could not resolve. wmic lists physical drives in the same order the
// partition table exposes them, so entries pair positionally; this is
// best effort, like the IO counter match.
func (c *StorageCollector) enrichFromWmic(disks []models.DiskInfo) {
	needed := false
	for _, d := range disks {
		if d.Model == "Unknown" || d.Serial == "Unknown" || d.DiskType == models.DiskTypeUnknown {
			needed = true
			break
		}
	}
	if !needed {
		return
	}
	out, ok := c.probe.TryRun("wmic", "diskdrive", "get", "Model,SerialNumber,InterfaceType", "/format:list")
	if !ok {
		return
	}
	drives := parseWmicDiskDrives(out)
	for i := range disks {
		if i >= len(drives) {
			break
		}
		d := &disks[i]
		if d.Model == "Unknown" && drives[i].model != "" {
			d.Model = drives[i].model
		}
		if d.Serial == "Unknown" && drives[i].serial != "" {
			d.Serial = drives[i].serial
		}
		if d.DiskType == models.DiskTypeUnknown {
			d.DiskType = diskTypeFromWmic(drives[i])
		}
	}
}

// parseWmicDiskDrives scans `wmic diskdrive` key=value output; blank
// lines separate drives.
func parseWmicDiskDrives(out string) []wmicDrive {
	var drives []wmicDrive
	current := wmicDrive{}
	flush := func() {
		if current.model != "" || current.serial != "" {
			drives = append(drives, current)
		}
		current = wmicDrive{}
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if v, found := strings.CutPrefix(line, "Model="); found {
			current.model = strings.TrimSpace(v)
		}
		if v, found := strings.CutPrefix(line, "SerialNumber="); found {
			current.serial = strings.TrimSpace(v)
		}
		if v, found := strings.CutPrefix(line, "InterfaceType="); found {
			current.interfaceType = strings.TrimSpace(v)
		}
	}
	flush()
	return drives
}

// diskTypeFromWmic infers the drive type from the interface or the
// model string. WMI has no rotational flag, so anything that is not
// recognizably NVMe or an "SSD"-branded model stays Unknown.
func diskTypeFromWmic(dr wmicDrive) string {
	model := strings.ToUpper(dr.model)
	switch {
	case strings.Contains(strings.ToUpper(dr.interfaceType), "NVME") || strings.Contains(model, "NVME"):
		return models.DiskTypeNVMe
	case strings.Contains(model, "SSD"):
		return models.DiskTypeSSD
	default:
		return models.DiskTypeUnknown
	}
}

// smartData queries smartctl when installed. A missing binary is an
// explicit "not installed" status, distinct from a failed query.
func (c *StorageCollector) smartData(device string) (string, *float64) {
	if !c.probe.LookPath("smartctl") {
		return models.SmartNotAvailable, nil
	}
	out, ok := c.probe.TryRun("smartctl", "-H", "-A", device)
	if !ok {
		return models.SmartUnknown, nil
	}
	return parseSmartctl(out)
}

// parseSmartctl scans `smartctl -H -A` output: overall health from the
// PASSED/FAILED keyword, temperature from the trailing numeric field
// of the Temperature_Celsius / Temperature_Internal attribute lines.
func parseSmartctl(out string) (string, *float64) {
	status := models.SmartUnknown
	if strings.Contains(out, "PASSED") {
		status = models.SmartPassed
	} else if strings.Contains(out, "FAILED") {
		status = models.SmartFailed
	}

	var temp *float64
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Temperature_Celsius") && !strings.Contains(line, "Temperature_Internal") {
			continue
		}
		fields := strings.Fields(line)
		for i := len(fields) - 1; i >= 0; i-- {
			if v, err := strconv.ParseFloat(fields[i], 64); err == nil {
				temp = floatPtr(v)
				break
			}
		}
		if temp != nil {
			break
		}
	}
	return status, temp
}

// matchIOCounters pairs OS counter keys with a disk by substring
// containment in either direction; first match in sorted key order
// wins. Best effort, not a contract.
func matchIOCounters(d *models.DiskInfo, counters map[string]disk.IOCountersStat) {
	if len(counters) == 0 {
		return
	}
	short := shortName(d.Name)
	keys := make([]string, 0, len(counters))
	for k := range counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, short) || strings.Contains(short, k) {
			d.ReadBytes = counters[k].ReadBytes
			d.WriteBytes = counters[k].WriteBytes
			return
		}
	}
}

func shortName(device string) string {
	return strings.TrimPrefix(device, "/dev/")
}
