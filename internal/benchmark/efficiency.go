// internal/benchmark/efficiency.go
package benchmark

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/benchmark/store"
	"saas-benchmarks/internal/models"
)

const grossToNetMagic = 1.2

// EfficiencyRow compares one efficiency measure with its rule-of-thumb
// benchmark.
type EfficiencyRow struct {
	Name           string  `json:"name"`
	Company        float64 `json:"company"`
	Benchmark      float64 `json:"benchmark"`
	HigherIsBetter bool    `json:"higherIsBetter"`
	Ahead          bool    `json:"ahead"`
}

// GTMComparison holds gross and net magic numbers for the company and each
// motion's benchmark.
type GTMComparison struct {
	Company    store.MagicNumbers `json:"company"`
	SalesLed   store.MagicNumbers `json:"salesLed"`
	ProductLed store.MagicNumbers `json:"productLed"`
}

// SalesEfficiency is the sales-efficiency view of one company.
type SalesEfficiency struct {
	Bucket              bucket.Bucket   `json:"bucket"`
	CACPayback          float64         `json:"cacPayback"`
	CACPaybackAvailable bool            `json:"cacPaybackAvailable"`
	CACPaybackTier      models.Tier     `json:"cacPaybackTier"`
	LTVToCAC            float64         `json:"ltvToCac"`
	LTVToCACTier        models.Tier     `json:"ltvToCacTier"`
	Metrics             []MetricResult  `json:"metrics"`
	GTM                 GTMComparison   `json:"gtm"`
	OpExSalesLed        store.Split     `json:"opexSalesLed"`
	OpExProductLed      store.Split     `json:"opexProductLed"`
	Comparison          []EfficiencyRow `json:"comparison"`
	Fallbacks           []string        `json:"fallbacks"`
}

func (e *Engine) SalesEfficiency(m models.CompanyMetrics) SalesEfficiency {
	var fb fallbacks
	b := e.resolveBucket(m.ARRScale, &fb)
	d := e.Derive(m)

	payback := e.store.BucketTier(store.MetricCACPayback, b)
	ltv := e.store.MotionTier(store.MetricLTVToCAC, m.GrowthMotion)
	noteMotionFallback(&fb, m.GrowthMotion, ltv)

	out := SalesEfficiency{
		Bucket:              b,
		CACPayback:          d.CACPayback,
		CACPaybackAvailable: d.CACPaybackAvailable,
		CACPaybackTier:      payback.Tier,
		LTVToCAC:            d.LTVToCAC,
		LTVToCACTier:        ltv.Tier,
		GTM: GTMComparison{
			Company:    store.MagicNumbers{Gross: calculator.Round(m.MagicNumber*grossToNetMagic, 2), Net: m.MagicNumber},
			SalesLed:   e.store.MagicNumbers(models.MotionSalesLed, b),
			ProductLed: e.store.MagicNumbers(models.MotionProductLed, b),
		},
		OpExSalesLed:   e.store.OpExSplit(models.MotionSalesLed),
		OpExProductLed: e.store.OpExSplit(models.MotionProductLed),
	}

	if d.CACPaybackAvailable {
		out.Metrics = append(out.Metrics, result(store.MetricCACPayback, d.CACPayback, payback))
	}
	out.Metrics = append(out.Metrics, result(store.MetricLTVToCAC, d.LTVToCAC, ltv))

	out.Comparison = []EfficiencyRow{
		row("Magic Number", m.MagicNumber, 1.0, true),
		row("CAC Payback (months)", d.CACPayback, 12, false),
		row("LTV/CAC Ratio", d.LTVToCAC, 3, true),
		row("Sales Efficiency", calculator.Round(m.MagicNumber*0.8, 2), 0.8, true),
		row("GM-Adjusted CAC Ratio", calculator.Round(m.MagicNumber*0.75, 2), 0.75, true),
	}
	out.Fallbacks = []string(fb)
	return out
}

func row(name string, company, benchmark float64, higherIsBetter bool) EfficiencyRow {
	ahead := company >= benchmark
	if !higherIsBetter {
		ahead = company <= benchmark
	}
	return EfficiencyRow{Name: name, Company: company, Benchmark: benchmark, HigherIsBetter: higherIsBetter, Ahead: ahead}
}
