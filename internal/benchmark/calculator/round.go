// internal/benchmark/calculator/round.go
package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds v to places decimals, half away from zero. Decimal arithmetic
// keeps values like 0.15 from drifting to 0.1 under binary rounding.
// NaN and infinities are returned as 0.
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}

// RoundInt rounds v to the nearest integer.
func RoundInt(v float64) int {
	return int(Round(v, 0))
}

// finite replaces NaN and infinities with fallback.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
