package collectors

import (
	"math"
	"strconv"
	"strings"
)

const gb = 1024 * 1024 * 1024

func toGB(v uint64) float64 {
	return round2(float64(v) / gb)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// parseFloat trims whitespace and a trailing percent sign before
// parsing; returns 0 on garbage, matching best-effort tool scraping.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// optionalFloat maps a vendor CLI field to nil when it carries the
// literal "[N/A]" sentinel or fails to parse.
func optionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "[N/A]" || s == "N/A" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// afterColon returns the trimmed value of a "Key: value" line.
func afterColon(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}
