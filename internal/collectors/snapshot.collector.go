package collectors

import (
	"fmt"
	"log"
	"sync"
	"time"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/host"
)

// Assembler owns one instance of every domain collector and produces
// immutable snapshots. It is the sole writer of the aggregate and
// publishes it only after every collector has returned.
type Assembler struct {
	cpu     *CPUCollector
	memory  *MemoryCollector
	storage *StorageCollector
	gpu     *GPUCollector
	battery *BatteryCollector
	network *NetworkCollector
}

// NewAssembler wires all collectors to the given prober. A nil prober
// is a caller bug, the one error class that is allowed to be fatal.
func NewAssembler(p probe.Prober) (*Assembler, error) {
	if p == nil {
		return nil, fmt.Errorf("assembler requires a prober")
	}
	return &Assembler{
		cpu:     NewCPUCollector(p),
		memory:  NewMemoryCollector(p),
		storage: NewStorageCollector(p),
		gpu:     NewGPUCollector(p),
		battery: NewBatteryCollector(p),
		network: NewNetworkCollector(p),
	}, nil
}

// CPU exposes the CPU collector for utilization history sampling.
func (a *Assembler) CPU() *CPUCollector { return a.cpu }

// Collect runs all six domain collectors concurrently and assembles
// one snapshot. Collectors touch disjoint OS subsystems and each owns
// its own sampling window, so the joins are safe. Collect always
// returns a usable snapshot; individual source failures degrade to
// defaults inside the owning collector.
func (a *Assembler) Collect() models.Snapshot {
	snap := models.Snapshot{
		ID:          uuid.NewString(),
		CollectedAt: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(6)
	go func() { defer wg.Done(); snap.CPU = a.cpu.Collect() }()
	go func() { defer wg.Done(); snap.Memory = a.memory.Collect() }()
	go func() { defer wg.Done(); snap.Disks = a.storage.Collect() }()
	go func() { defer wg.Done(); snap.GPUs = a.gpu.Collect() }()
	go func() { defer wg.Done(); snap.Battery = a.battery.Collect() }()
	go func() { defer wg.Done(); snap.Interfaces = a.network.Collect() }()
	wg.Wait()

	snap.System = collectOverview()
	return snap
}

func collectOverview() models.SystemOverview {
	overview := models.SystemOverview{
		ScanTime: time.Now().Format("2006-01-02 15:04:05"),
	}
	info, err := host.Info()
	if err != nil {
		log.Printf("Warning: Could not read host information: %v", err)
		return overview
	}
	overview.Hostname = info.Hostname
	overview.OS = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
	overview.OSVersion = info.KernelVersion
	overview.Architecture = info.KernelArch
	overview.BootTime = time.Unix(int64(info.BootTime), 0).Format("2006-01-02 15:04:05")
	overview.Uptime = fmt.Sprintf("%dh %dm", info.Uptime/3600, (info.Uptime%3600)/60)
	return overview
}
