package collectors

import (
	"log"
	stdnet "net"
	"strconv"
	"strings"
	"time"

	"hwdoctor/internal/models"
	"hwdoctor/internal/probe"

	"github.com/shirou/gopsutil/v3/net"
)

// throughputWindow is the fixed counter-delta sampling window. The
// sleep is the measurement, not an inefficiency; this collector is the
// largest fixed latency in a collection run.
const throughputWindow = time.Second

// NetworkCollector resolves addresses, link state and instantaneous
// throughput for every interface the OS reports.
type NetworkCollector struct {
	probe  probe.Prober
	window time.Duration
}

func NewNetworkCollector(p probe.Prober) *NetworkCollector {
	return &NetworkCollector{probe: p, window: throughputWindow}
}

func (c *NetworkCollector) Collect() []models.NetworkInterfaceInfo {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("Warning: Could not enumerate network interfaces: %v", err)
		return nil
	}

	before := countersByName()
	start := time.Now()
	time.Sleep(c.window)
	elapsed := time.Since(start).Seconds()
	after := countersByName()

	result := make([]models.NetworkInterfaceInfo, 0, len(ifaces))
	for _, iface := range ifaces {
		info := models.NetworkInterfaceInfo{
			Name: iface.Name,
			MAC:  models.AddrNotAvailable,
			IPv4: models.AddrNotAvailable,
		}
		if iface.HardwareAddr != "" {
			info.MAC = iface.HardwareAddr
		}
		if ip := firstIPv4(iface.Addrs); ip != "" {
			info.IPv4 = ip
		}
		for _, flag := range iface.Flags {
			if flag == "up" {
				info.IsUp = true
			}
		}
		info.SpeedMbps = c.linkSpeed(iface.Name)

		if cur, ok := after[iface.Name]; ok {
			info.BytesSent = cur.BytesSent
			info.BytesRecv = cur.BytesRecv
			if prev, ok := before[iface.Name]; ok && elapsed > 0 {
				if cur.BytesSent >= prev.BytesSent {
					info.UploadKBps = round2(float64(cur.BytesSent-prev.BytesSent) / 1024 / elapsed)
				}
				if cur.BytesRecv >= prev.BytesRecv {
					info.DownloadKBps = round2(float64(cur.BytesRecv-prev.BytesRecv) / 1024 / elapsed)
				}
			}
		}
		result = append(result, info)
	}
	return result
}

func countersByName() map[string]net.IOCountersStat {
	counters, err := net.IOCounters(true)
	if err != nil {
		log.Printf("Warning: Could not read network IO counters: %v", err)
		return nil
	}
	byName := make(map[string]net.IOCountersStat, len(counters))
	for _, c := range counters {
		byName[c.Name] = c
	}
	return byName
}

// firstIPv4 picks the first IPv4 address from an interface address
// list; an interface with several reports only one.
func firstIPv4(addrs net.InterfaceAddrList) string {
	for _, addr := range addrs {
		raw := addr.Addr
		if idx := strings.Index(raw, "/"); idx >= 0 {
			raw = raw[:idx]
		}
		if ip := stdnet.ParseIP(raw); ip != nil && ip.To4() != nil {
			return raw
		}
	}
	return ""
}

// linkSpeed reads the sysfs link speed. A reported 0 (or a negative
// value on virtual interfaces) means unknown, not a zero-speed link.
func (c *NetworkCollector) linkSpeed(name string) *int {
	s, ok := probe.ReadTrimmed(c.probe, "/sys/class/net/"+name+"/speed")
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return nil
	}
	return intPtr(v)
}
