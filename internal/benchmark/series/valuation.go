// internal/benchmark/series/valuation.go
package series

import (
	"saas-benchmarks/internal/benchmark/calculator"
)

// growthBands are the upper bounds (exclusive) of each growth band and its
// base revenue multiple. Growth at or above the last bound gets topMultiple.
var growthBands = []struct {
	below    float64
	multiple float64
}{
	{30, 4},
	{50, 8},
	{75, 12},
	{100, 16},
	{125, 20},
	{150, 24},
}

const topMultiple = 28

// ValuationPoint is one growth rate on the multiple curve. Company is set
// only on the point nearest the company's own growth.
type ValuationPoint struct {
	Growth   float64  `json:"growth"`
	Multiple float64  `json:"multiple"`
	Company  *float64 `json:"yourCompany,omitempty"`
}

// ValuationMultiple is the band multiple scaled by company size and
// adjusted for profitability.
func ValuationMultiple(growth, fcfMargin, scaleMultiplier float64) float64 {
	multiple := float64(topMultiple)
	for _, b := range growthBands {
		if growth < b.below {
			multiple = b.multiple
			break
		}
	}

	multiple *= scaleMultiplier

	switch {
	case fcfMargin > 0:
		multiple *= 1.2
	case fcfMargin < -30:
		multiple *= 0.8
	}

	return calculator.Round(multiple, 2)
}

// ValuationCurve evaluates the multiple for growth 20..200 in steps of 10.
func ValuationCurve(companyGrowth, fcfMargin, scaleMultiplier float64) []ValuationPoint {
	nearest := calculator.Round(companyGrowth/10, 0) * 10
	own := ValuationMultiple(companyGrowth, fcfMargin, scaleMultiplier)

	out := make([]ValuationPoint, 0, 19)
	for g := 20; g <= 200; g += 10 {
		p := ValuationPoint{Growth: float64(g), Multiple: ValuationMultiple(float64(g), fcfMargin, scaleMultiplier)}
		if float64(g) == nearest {
			v := own
			p.Company = &v
		}
		out = append(out, p)
	}
	return out
}
