package helpers

import (
	"strings"
)

// SplitCSV splits a comma-separated list, trimming blanks and dropping empty entries.
func SplitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Percentage returns part/total*100 rounded to one decimal place, or 0 when total is 0.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return RoundOneDecimal(float64(part) / float64(total) * 100)
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(v float64) float64 {
	if v < 0 {
		return -RoundOneDecimal(-v)
	}
	return float64(int64(v*10+0.5)) / 10
}
