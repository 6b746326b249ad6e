package models

// SystemOverview holds host identity collected alongside the hardware
// domains.
type SystemOverview struct {
	Hostname     string `json:"hostname"`
	OS           string `json:"os"`
	OSVersion    string `json:"os_version"`
	Architecture string `json:"architecture"`
	BootTime     string `json:"boot_time"`
	Uptime       string `json:"uptime"`
	ScanTime     string `json:"scan_time"`
}
