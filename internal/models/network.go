package models

// AddrNotAvailable marks an interface without a MAC or IPv4 address.
const AddrNotAvailable = "N/A"

// NetworkInterfaceInfo represents one interface with cumulative
// counters and instantaneous throughput sampled over the collector's
// fixed measurement window.
type NetworkInterfaceInfo struct {
	Name string `json:"name"`
	MAC  string `json:"mac"`
	IPv4 string `json:"ipv4"`

	IsUp      bool `json:"is_up"`
	SpeedMbps *int `json:"speed_mbps,omitempty"`

	BytesSent uint64 `json:"bytes_sent"`
	BytesRecv uint64 `json:"bytes_recv"`

	UploadKBps   float64 `json:"upload_kbps"`
	DownloadKBps float64 `json:"download_kbps"`
}
