package analytics

import (
	"math"
	"strconv"
)

// roundRate rounds a percentage half-up to one decimal place. Half-up was
// chosen over half-to-even and is relied on by FormatRateLabel.
func roundRate(pct float64) float64 {
	return math.Floor(pct*10+0.5) / 10
}

// FormatRateLabel renders a percentage as a one-decimal label, e.g. 16.87
// becomes "16.9%". The numeral parses back to the rounded rate exactly.
func FormatRateLabel(pct float64) string {
	return strconv.FormatFloat(roundRate(pct), 'f', 1, 64) + "%"
}
