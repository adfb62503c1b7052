// internal/benchmark/series/cohort.go
package series

import (
	"math"

	"saas-benchmarks/internal/benchmark/calculator"
)

const (
	DefaultCohortMonths = 12
	DefaultLTVMonths    = 36

	benchmarkRetentionRate   = 0.95
	benchmarkExpansionFactor = 0.1
)

// CohortPoint is a company value with the benchmark at the same month.
type CohortPoint struct {
	Month     int     `json:"month"`
	Company   float64 `json:"company"`
	Benchmark float64 `json:"benchmark"`
}

type CohortAnalysis struct {
	Retention []CohortPoint `json:"retention"`
	Expansion []CohortPoint `json:"netDollarRetention"`
	LTV       []CohortPoint `json:"ltv"`
}

// Cohort builds retention and expansion over cohortMonths and cumulative LTV
// over ltvMonths.
func Cohort(churnRate, netRetention float64, cohortMonths, ltvMonths int) CohortAnalysis {
	r := RetentionRate(churnRate)
	f := ExpansionFactor(netRetention)

	retention := make([]CohortPoint, 0, cohortMonths+1)
	expansion := make([]CohortPoint, 0, cohortMonths+1)
	for t := 0; t <= cohortMonths; t++ {
		retention = append(retention, CohortPoint{Month: t, Company: Retention(r, t), Benchmark: Retention(benchmarkRetentionRate, t)})
		expansion = append(expansion, CohortPoint{Month: t, Company: Expansion(f, t), Benchmark: Expansion(benchmarkExpansionFactor, t)})
	}

	return CohortAnalysis{
		Retention: retention,
		Expansion: expansion,
		LTV:       LTVCurve(churnRate, netRetention, ltvMonths),
	}
}

// RetentionRate converts a churn percentage into a per-period retention
// base, floored at zero.
func RetentionRate(churnRate float64) float64 {
	return math.Max((100-churnRate)/100, 0)
}

func ExpansionFactor(netRetention float64) float64 {
	return (netRetention - 100) / 100
}

// Retention is 100·r^√t rounded, and exactly 100 at t=0.
func Retention(rate float64, t int) float64 {
	if t <= 0 {
		return 100
	}
	return calculator.Round(100*math.Pow(rate, math.Sqrt(float64(t))), 0)
}

// Expansion is 100·(1 + f·ln(t+1)) rounded, and exactly 100 at t=0.
func Expansion(factor float64, t int) float64 {
	if t <= 0 {
		return 100
	}
	return calculator.Round(100*(1+factor*math.Log(float64(t)+1)), 0)
}

// monthlyValue is the revenue retained in month t per unit of initial
// revenue, with expansion scaled to a monthly rate.
func monthlyValue(rate, factor float64, t int) float64 {
	if t == 0 {
		return 1
	}
	retained := math.Pow(rate, math.Sqrt(float64(t)))
	expanded := 1 + factor*math.Log(float64(t)+1)/12
	v := retained * expanded
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ltvTotals is the running state of the LTV fold.
type ltvTotals struct {
	company   float64
	benchmark float64
}

func (a ltvTotals) add(company, benchmark float64) ltvTotals {
	return ltvTotals{company: a.company + company, benchmark: a.benchmark + benchmark}
}

// LTVCurve folds monthly values into cumulative LTV for months 0..months.
func LTVCurve(churnRate, netRetention float64, months int) []CohortPoint {
	r := RetentionRate(churnRate)
	f := ExpansionFactor(netRetention)

	out := make([]CohortPoint, 0, months+1)
	var acc ltvTotals
	for t := 0; t <= months; t++ {
		acc = acc.add(monthlyValue(r, f, t), monthlyValue(benchmarkRetentionRate, benchmarkExpansionFactor, t))
		out = append(out, CohortPoint{
			Month:     t,
			Company:   calculator.Round(acc.company, 2),
			Benchmark: calculator.Round(acc.benchmark, 2),
		})
	}
	return out
}
