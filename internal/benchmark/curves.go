// internal/benchmark/curves.go
package benchmark

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/models"
)

// QuarterlySeries are the five-year quartile curves with the company's
// current values overlaid.
type QuarterlySeries struct {
	ARRGrowth    []series.QuarterPoint `json:"arrGrowth"`
	NetRetention []series.QuarterPoint `json:"netRetention"`
	ARRPerFTE    []series.QuarterPoint `json:"arrPerFte"`
	MagicNumber  []series.MagicPoint   `json:"magicNumber"`
}

func (e *Engine) Quarterly(m models.CompanyMetrics) QuarterlySeries {
	return QuarterlySeries{
		ARRGrowth:    series.ARRGrowthCurve(m.ARRGrowth, series.DefaultQuarters),
		NetRetention: series.NetRetentionCurve(m.NetRetention, series.DefaultQuarters),
		ARRPerFTE:    series.ARRPerFTECurve(m.ARRPerFTE, series.DefaultQuarters),
		MagicNumber:  series.MagicNumberCurve(m.MagicNumber, series.DefaultMagicQuarters),
	}
}

// Cohort projects retention, expansion and LTV for the default horizons.
func (e *Engine) Cohort(m models.CompanyMetrics) series.CohortAnalysis {
	return series.Cohort(m.ChurnRate, m.NetRetention, series.DefaultCohortMonths, series.DefaultLTVMonths)
}

// Valuation is the growth/multiple curve scaled for the company's bucket.
func (e *Engine) Valuation(m models.CompanyMetrics) []series.ValuationPoint {
	b, _ := bucket.Lookup(m.ARRScale)
	return series.ValuationCurve(m.ARRGrowth, m.FCFMargin, e.store.ValuationScaleMultiplier(b))
}

// Scenarios compares m against the named preset, or every preset when name
// is empty. An unknown name yields nil.
func (e *Engine) Scenarios(m models.CompanyMetrics, name string) []series.ScenarioComparison {
	if name != "" {
		p, ok := series.FindPreset(name)
		if !ok {
			return nil
		}
		return []series.ScenarioComparison{series.Compare(p.Name, m, p.Apply(m))}
	}

	presets := series.Presets()
	out := make([]series.ScenarioComparison, 0, len(presets))
	for _, p := range presets {
		out = append(out, series.Compare(p.Name, m, p.Apply(m)))
	}
	return out
}

// CompareCustom compares m against a caller-built scenario.
func (e *Engine) CompareCustom(name string, baseline, scenario models.CompanyMetrics) series.ScenarioComparison {
	return series.Compare(name, baseline, scenario)
}
