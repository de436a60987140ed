package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDistance renders meters as "850 m", "4.2 km" or "120 km".
func FormatDistance(meters float64) string {
	switch {
	case meters < 1000:
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	case meters < 10000:
		return strconv.FormatFloat(math.Round(meters/100)/10, 'f', -1, 64) + " km"
	default:
		return fmt.Sprintf("%d km", int(math.Round(meters/1000)))
	}
}

// FormatDuration renders seconds with the two most significant units,
// e.g. "2 hours 30 minutes" or "3 days 4 hours".
func FormatDuration(seconds float64) string {
	total := int64(math.Round(seconds))
	if total < 60 {
		return "less than a minute"
	}

	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60

	parts := make([]string, 0, 2)
	switch {
	case days > 0:
		parts = append(parts, plural(days, "day"))
		if hours > 0 {
			parts = append(parts, plural(hours, "hour"))
		}
	case hours > 0:
		parts = append(parts, plural(hours, "hour"))
		if minutes > 0 {
			parts = append(parts, plural(minutes, "minute"))
		}
	default:
		parts = append(parts, plural(minutes, "minute"))
	}

	return strings.Join(parts, " ")
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
