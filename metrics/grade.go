package metrics

import "math"

// Grade buckets an R² value for display.
type Grade int

const (
	Poor Grade = iota // R² < 0.5
	Fair
	Good // R² > 0.7
)

// Thresholds used by GradeOf.
const (
	PoorBelow = 0.5
	GoodAbove = 0.7
)

func (g Grade) String() string {
	switch g {
	case Poor:
		return "poor"
	case Good:
		return "good"
	default:
		return "fair"
	}
}

// GradeOf classifies r2.
func GradeOf(r2 float64) Grade {
	switch {
	case r2 > GoodAbove:
		return Good
	case r2 < PoorBelow:
		return Poor
	default:
		return Fair
	}
}

// Percent returns r2 as a rounded percentage.
func Percent(r2 float64) int {
	return int(math.Round(r2 * 100))
}
