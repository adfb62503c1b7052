// internal/benchmark/series/quarterly.go
package series

import "saas-benchmarks/internal/benchmark/calculator"

const (
	DefaultQuarters      = 20
	DefaultMagicQuarters = 16
)

// QuarterPoint is one quarter of a quartile benchmark curve with the
// company's current value alongside.
type QuarterPoint struct {
	Quarter int     `json:"quarter"`
	Top     float64 `json:"topQuartile"`
	Median  float64 `json:"median"`
	Bottom  float64 `json:"bottomQuartile"`
	Company float64 `json:"yourCompany"`
}

type MagicPoint struct {
	Quarter int     `json:"quarter"`
	Gross   float64 `json:"grossMagicNumber"`
	Net     float64 `json:"netMagicNumber"`
	Company float64 `json:"yourCompany"`
}

// ARRGrowthCurve rises 5 points a quarter to a peak at quarter 4, then decays
// 5 points a quarter. The median trails the top quartile by 70 points and
// the bottom quartile by 110, never below zero.
func ARRGrowthCurve(company float64, quarters int) []QuarterPoint {
	return quarterly(quarters, company, func(q int) (float64, float64, float64) {
		top := 190 - 5*float64(abs(q-4))
		return top, top - 70, max(top-110, 0)
	})
}

// NetRetentionCurve oscillates in 2-point steps: up to quarter 4, down to
// quarter 13, up to quarter 18, then down again.
func NetRetentionCurve(company float64, quarters int) []QuarterPoint {
	return quarterly(quarters, company, func(q int) (float64, float64, float64) {
		var top float64
		switch {
		case q <= 4:
			top = 130 + 2*float64(q)
		case q <= 13:
			top = 138 - 2*float64(q-4)
		case q <= 18:
			top = 120 + 2*float64(q-13)
		default:
			top = 130 - 2*float64(q-18)
		}
		return top, top - 20, top - 40
	})
}

// ARRPerFTECurve grows linearly as headcount productivity matures.
func ARRPerFTECurve(company float64, quarters int) []QuarterPoint {
	return quarterly(quarters, company, func(q int) (float64, float64, float64) {
		f := float64(q)
		return 100000 + 10000*f, 80000 + 5000*f, 60000 + 5000*f
	})
}

// MagicNumberCurve declines 0.1 a quarter from 2.3 gross / 1.8 net.
func MagicNumberCurve(company float64, quarters int) []MagicPoint {
	if quarters < 0 {
		quarters = 0
	}
	out := make([]MagicPoint, 0, quarters+1)
	for q := 0; q <= quarters; q++ {
		f := float64(q)
		out = append(out, MagicPoint{
			Quarter: q,
			Gross:   calculator.Round(2.3-0.1*f, 1),
			Net:     calculator.Round(1.8-0.1*f, 1),
			Company: company,
		})
	}
	return out
}

func quarterly(quarters int, company float64, at func(q int) (top, median, bottom float64)) []QuarterPoint {
	if quarters < 0 {
		quarters = 0
	}
	out := make([]QuarterPoint, 0, quarters+1)
	for q := 0; q <= quarters; q++ {
		top, median, bottom := at(q)
		out = append(out, QuarterPoint{Quarter: q, Top: top, Median: median, Bottom: bottom, Company: company})
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
