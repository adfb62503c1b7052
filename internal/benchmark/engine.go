// internal/benchmark/engine.go
package benchmark

import (
	"math/rand/v2"

	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/benchmark/store"
	"saas-benchmarks/internal/models"
)

// SeriesKind selects an optional series for Evaluate.
type SeriesKind string

const (
	SeriesQuarterly   SeriesKind = "quarterly"
	SeriesCohort      SeriesKind = "cohort"
	SeriesValuation   SeriesKind = "valuation"
	SeriesScenarios   SeriesKind = "scenarios"
	SeriesPeers       SeriesKind = "peers"
	SeriesFunnel      SeriesKind = "funnel"
	SeriesRoundValues SeriesKind = "rounds"
)

// AllSeries lists every series kind.
func AllSeries() []SeriesKind {
	return []SeriesKind{SeriesQuarterly, SeriesCohort, SeriesValuation, SeriesScenarios, SeriesPeers, SeriesFunnel, SeriesRoundValues}
}

// Snapshot is the immutable input to one evaluation. Funding is optional.
type Snapshot struct {
	Company models.CompanyMetrics  `json:"company" yaml:"company"`
	Funding *models.FundingProfile `json:"funding,omitempty" yaml:"funding,omitempty"`
}

// EvaluateOptions carries the inputs that are not part of the company
// snapshot. CurrentYear is the caller's calendar year and only feeds the
// funding metrics; the engine never reads a clock. A nil Rand is seeded
// from Seed.
type EvaluateOptions struct {
	CurrentYear int
	Rand        *rand.Rand
	Seed        uint64
	Series      []SeriesKind
	XAxis       string
	YAxis       string
}

func (o EvaluateOptions) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return NewRand(o.Seed)
}

func (o EvaluateOptions) wants(kind SeriesKind) bool {
	for _, k := range o.Series {
		if k == kind {
			return true
		}
	}
	return false
}

// NewRand returns the deterministic source used for peer generation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// DerivedMetrics is the computed bundle for one snapshot.
type DerivedMetrics struct {
	RuleOf40            float64                    `json:"ruleOf40"`
	BurnMultiple        float64                    `json:"burnMultiple"`
	CACPayback          float64                    `json:"cacPayback"`
	CACPaybackAvailable bool                       `json:"cacPaybackAvailable"`
	LTVToCAC            float64                    `json:"ltvToCac"`
	IPOReadiness        calculator.IPOReadiness    `json:"ipoReadiness"`
	Resilience          calculator.Resilience      `json:"resilience"`
	Funding             *calculator.FundingMetrics `json:"funding,omitempty"`
}

// SeriesBundle holds the series requested through EvaluateOptions.
type SeriesBundle struct {
	Quarterly *QuarterlySeries            `json:"quarterly,omitempty"`
	Cohort    *series.CohortAnalysis      `json:"cohort,omitempty"`
	Valuation []series.ValuationPoint     `json:"valuation,omitempty"`
	Scenarios []series.ScenarioComparison `json:"scenarios,omitempty"`
	Peers     *series.PositioningMap      `json:"peers,omitempty"`
	Funnel    []series.FunnelStep         `json:"funnel,omitempty"`
	Rounds    []calculator.RoundMultiple  `json:"rounds,omitempty"`
}

// Report is everything the presentation layer needs for one snapshot.
// Fallbacks names each category or bucket that was silently substituted.
type Report struct {
	Bucket       bucket.Bucket    `json:"bucket"`
	Industry     store.Industry   `json:"industry"`
	Derived      DerivedMetrics   `json:"derived"`
	Metrics      []MetricResult   `json:"metrics"`
	SummaryCards []SummaryCard    `json:"summaryCards"`
	Funding      *FundingAnalysis `json:"fundingAnalysis,omitempty"`
	Series       SeriesBundle     `json:"series"`
	Fallbacks    []string         `json:"fallbacks"`
}

// Engine composes the benchmark store with the calculators. It holds only
// the read-only store, so one Engine may serve concurrent callers.
type Engine struct {
	store *store.Store
}

func NewEngine() *Engine {
	return &Engine{store: store.New()}
}

// Store exposes the underlying tables.
func (e *Engine) Store() *store.Store {
	return e.store
}

// Evaluate runs the whole engine once over snap.
func (e *Engine) Evaluate(snap Snapshot, opts EvaluateOptions) Report {
	m := snap.Company
	cmp := e.CompareMetrics(m)

	report := Report{
		Bucket:       cmp.Bucket,
		Industry:     cmp.Industry,
		Derived:      e.Derive(m),
		Metrics:      cmp.Metrics,
		SummaryCards: cmp.SummaryCards,
		Fallbacks:    append([]string{}, cmp.Fallbacks...),
	}

	if snap.Funding != nil {
		fa := e.AnalyzeFunding(*snap.Funding, opts.CurrentYear)
		report.Funding = &fa
		report.Derived.Funding = &fa.Metrics
		if opts.wants(SeriesRoundValues) {
			report.Series.Rounds = fa.RoundMultiples
		}
	}

	if opts.wants(SeriesQuarterly) {
		q := e.Quarterly(m)
		report.Series.Quarterly = &q
	}
	if opts.wants(SeriesCohort) {
		c := e.Cohort(m)
		report.Series.Cohort = &c
	}
	if opts.wants(SeriesValuation) {
		report.Series.Valuation = e.Valuation(m)
	}
	if opts.wants(SeriesScenarios) {
		report.Series.Scenarios = e.Scenarios(m, "")
	}
	if opts.wants(SeriesPeers) {
		pm := series.Positioning(m, opts.XAxis, opts.YAxis, opts.rng())
		report.Series.Peers = &pm
	}
	if opts.wants(SeriesFunnel) {
		report.Series.Funnel = cmp.Funnel
	}

	return report
}

// Derive computes the derived metric bundle without any benchmark lookups.
func (e *Engine) Derive(m models.CompanyMetrics) DerivedMetrics {
	d := DerivedMetrics{
		RuleOf40:     calculator.RuleOf40(m.ARRGrowth, m.FCFMargin),
		BurnMultiple: m.BurnMultiple,
		LTVToCAC:     calculator.LTVToCAC(m.MagicNumber, m.GrowthMotion),
		IPOReadiness: calculator.CalculateIPOReadiness(m),
		Resilience:   calculator.CalculateResilience(m),
	}
	d.CACPayback, d.CACPaybackAvailable = calculator.CACPayback(m.MagicNumber)
	return d
}

// Classify resolves a bucket from a label, or from a dollar ARR when the
// label is empty. known is false when an unrecognized label was replaced.
func Classify(label string, arr float64) (b bucket.Bucket, known bool) {
	if label == "" {
		return bucket.FromARR(arr), true
	}
	return bucket.Lookup(label)
}
