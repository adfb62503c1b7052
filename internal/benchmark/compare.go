// internal/benchmark/compare.go
package benchmark

import (
	"fmt"

	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/benchmark/rating"
	"saas-benchmarks/internal/benchmark/series"
	"saas-benchmarks/internal/benchmark/store"
	"saas-benchmarks/internal/models"
)

// MetricResult is one metric's value with its tier and rating.
type MetricResult struct {
	Metric        store.Metric      `json:"metric"`
	Value         float64           `json:"value"`
	Tier          models.Tier       `json:"tier"`
	Direction     models.Direction  `json:"direction"`
	Rating        rating.Rating     `json:"rating"`
	QuartileLabel string            `json:"quartileLabel"`
	Assessment    models.Assessment `json:"assessment"`
	Category      store.Category    `json:"category,omitempty"`
	Scale         string            `json:"scale,omitempty"`
}

// SummaryCard is a dashboard headline with its three-way label.
type SummaryCard struct {
	Metric store.Metric `json:"metric"`
	Title  string       `json:"title"`
	Value  float64      `json:"value"`
	Label  string       `json:"label"`
}

// Comparison is the dashboard benchmark view of one company.
type Comparison struct {
	Bucket          bucket.Bucket         `json:"bucket"`
	Industry        store.Industry        `json:"industry"`
	SummaryCards    []SummaryCard         `json:"summaryCards"`
	Metrics         []MetricResult        `json:"metrics"`
	RuleOf40        store.RuleOf40Profile `json:"ruleOf40Profile"`
	CompanyRuleOf40 store.RuleOf40Point   `json:"companyRuleOf40"`
	SpendProfile    store.Split           `json:"spendProfile"`
	CompanySpend    store.Split           `json:"companySpend"`
	Headcount       store.Split           `json:"headcountProfile"`
	FunnelProfile   store.Funnel          `json:"funnelProfile"`
	Funnel          []series.FunnelStep   `json:"funnel"`
	BurnTiers       []ScaleTier           `json:"burnMultipleByScale"`
	RunwayTiers     []ScaleTier           `json:"runwayByScale"`
	Fallbacks       []string              `json:"fallbacks"`
}

// ScaleTier is a tier for one bucket, flagged when it is the company's.
type ScaleTier struct {
	Bucket  bucket.Bucket `json:"bucket"`
	Tier    models.Tier   `json:"tier"`
	Current bool          `json:"current"`
}

var cardTitles = []struct {
	metric store.Metric
	title  string
}{
	{store.MetricARRGrowth, "YoY ARR Growth"},
	{store.MetricNetRetention, "Net $ Retention"},
	{store.MetricRuleOf40, "Rule of 40"},
	{store.MetricMagicNumber, "Magic Number"},
	{store.MetricARRPerFTE, "ARR per FTE"},
	{store.MetricGrossMargin, "Gross Margin"},
	{store.MetricBurnMultiple, "Burn Multiple"},
	{store.MetricRunway, "Runway"},
	{store.MetricChurnRate, "Churn Rate"},
}

// industryMetrics are looked up in the industry tables.
var industryMetrics = []store.Metric{
	store.MetricARRGrowth,
	store.MetricNetRetention,
	store.MetricGrossMargin,
	store.MetricMagicNumber,
	store.MetricFCFMargin,
}

func metricValue(m models.CompanyMetrics, metric store.Metric) float64 {
	switch metric {
	case store.MetricARRGrowth:
		return m.ARRGrowth
	case store.MetricNetRetention:
		return m.NetRetention
	case store.MetricGrossMargin:
		return m.GrossMargin
	case store.MetricMagicNumber:
		return m.MagicNumber
	case store.MetricFCFMargin:
		return m.FCFMargin
	case store.MetricRuleOf40:
		return m.RuleOf40()
	case store.MetricARRPerFTE:
		return m.ARRPerFTE
	case store.MetricBurnMultiple:
		return m.BurnMultiple
	case store.MetricRunway:
		return m.Runway
	case store.MetricChurnRate:
		return m.ChurnRate
	}
	return 0
}

func result(metric store.Metric, value float64, b store.Benchmark) MetricResult {
	r := rating.Classify(value, b.Tier, b.Direction)
	return MetricResult{
		Metric:        metric,
		Value:         value,
		Tier:          b.Tier,
		Direction:     b.Direction,
		Rating:        r,
		QuartileLabel: r.QuartileLabel(),
		Assessment:    rating.Assess(string(metric), value, b.Tier, b.Direction),
		Category:      b.Category,
		Scale:         b.Scale,
	}
}

// fallbacks collects substitution notes in first-seen order.
type fallbacks []string

func (f *fallbacks) add(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	for _, existing := range *f {
		if existing == msg {
			return
		}
	}
	*f = append(*f, msg)
}

func (e *Engine) resolveBucket(label string, fb *fallbacks) bucket.Bucket {
	b, ok := bucket.Lookup(label)
	if !ok {
		fb.add("arrScale %q is not a known bucket; using %s", label, b)
	}
	return b
}

func (e *Engine) resolveIndustry(key string, fb *fallbacks) store.Industry {
	if key == "" {
		key = "all"
	}
	ind, ok := e.store.ResolveIndustry(key)
	if !ok {
		fb.add("industry %q is not a known vertical; using %s", key, ind.Key)
	}
	return ind
}

func noteTierFallback(fb *fallbacks, metric store.Metric, requested string, b store.Benchmark) {
	if !b.Fallback {
		return
	}
	source := "base"
	if b.Category != store.CategoryBase {
		source = string(b.Category)
	}
	if requested == "" {
		fb.add("%s: using %s table", metric, source)
		return
	}
	fb.add("%s: no tier for %s; using %s table", metric, requested, source)
}

// CompareMetrics rates the company against every applicable tier and builds
// the dashboard profiles for its bucket.
func (e *Engine) CompareMetrics(m models.CompanyMetrics) Comparison {
	var fb fallbacks
	b := e.resolveBucket(m.ARRScale, &fb)
	ind := e.resolveIndustry(m.Industry, &fb)

	var results []MetricResult
	for _, metric := range industryMetrics {
		bm := e.store.IndustryTier(metric, ind.Key)
		if ind.Key != "all" {
			noteTierFallback(&fb, metric, ind.Key, bm)
		}
		results = append(results, result(metric, metricValue(m, metric), bm))
	}

	for _, metric := range []store.Metric{store.MetricRuleOf40, store.MetricBurnMultiple, store.MetricRunway} {
		results = append(results, result(metric, metricValue(m, metric), e.store.BucketTier(metric, b)))
	}

	derived := e.Derive(m)
	if derived.CACPaybackAvailable {
		results = append(results, result(store.MetricCACPayback, derived.CACPayback, e.store.BucketTier(store.MetricCACPayback, b)))
	}

	ltv := e.store.MotionTier(store.MetricLTVToCAC, m.GrowthMotion)
	noteMotionFallback(&fb, m.GrowthMotion, ltv)
	results = append(results, result(store.MetricLTVToCAC, derived.LTVToCAC, ltv))

	for _, metric := range []store.Metric{store.MetricChurnRate, store.MetricARRPerFTE} {
		results = append(results, result(metric, metricValue(m, metric), e.store.SummaryTier(metric)))
	}

	companyFunnel := store.Funnel{NewLogo: m.NewLogoPercent, Expansion: m.ExpansionPercent, Churn: m.ChurnRate}
	funnelProfile := e.store.FunnelProfile(b)

	return Comparison{
		Bucket:          b,
		Industry:        ind,
		SummaryCards:    e.SummaryCards(m),
		Metrics:         results,
		RuleOf40:        e.store.RuleOf40Profile(b),
		CompanyRuleOf40: store.RuleOf40Point{Growth: m.ARRGrowth, FCFMargin: m.FCFMargin},
		SpendProfile:    e.store.SpendProfile(b),
		CompanySpend:    store.Split{SalesMarketing: m.SalesMarketingPercent, RD: m.RDPercent, GA: m.GAPercent},
		Headcount:       e.store.HeadcountProfile(b, m.GrowthMotion),
		FunnelProfile:   funnelProfile,
		Funnel:          series.ARRFunnel(companyFunnel, funnelProfile),
		BurnTiers:       e.scaleTiers(store.MetricBurnMultiple, b),
		RunwayTiers:     e.scaleTiers(store.MetricRunway, b),
		Fallbacks:       []string(fb),
	}
}

func noteMotionFallback(fb *fallbacks, motion models.GrowthMotion, b store.Benchmark) {
	if b.Fallback {
		fb.add("growthMotion %q is not a known motion; using %s tables", motion, models.MotionSalesLed)
	}
}

// SummaryCards labels the headline metrics against the dashboard thresholds.
func (e *Engine) SummaryCards(m models.CompanyMetrics) []SummaryCard {
	out := make([]SummaryCard, 0, len(cardTitles))
	for _, c := range cardTitles {
		tier := e.store.SummaryTier(c.metric)
		v := metricValue(m, c.metric)
		out = append(out, SummaryCard{
			Metric: c.metric,
			Title:  c.title,
			Value:  v,
			Label:  rating.CardLabel(v, tier.Tier, tier.Direction),
		})
	}
	return out
}

func (e *Engine) scaleTiers(metric store.Metric, current bucket.Bucket) []ScaleTier {
	all := bucket.All()
	out := make([]ScaleTier, 0, len(all))
	for _, b := range all {
		out = append(out, ScaleTier{Bucket: b, Tier: e.store.BucketTier(metric, b).Tier, Current: b == current})
	}
	return out
}

// IndustryComparison rates the industry metrics against one vertical.
type IndustryComparison struct {
	Industry   store.Industry   `json:"industry"`
	Industries []store.Industry `json:"industries"`
	Metrics    []MetricResult   `json:"metrics"`
	Fallbacks  []string         `json:"fallbacks"`
}

func (e *Engine) CompareIndustry(m models.CompanyMetrics, industry string) IndustryComparison {
	var fb fallbacks
	ind := e.resolveIndustry(industry, &fb)

	results := make([]MetricResult, 0, len(industryMetrics))
	for _, metric := range industryMetrics {
		bm := e.store.IndustryTier(metric, ind.Key)
		if ind.Key != "all" {
			noteTierFallback(&fb, metric, ind.Key, bm)
		}
		results = append(results, result(metric, metricValue(m, metric), bm))
	}

	return IndustryComparison{
		Industry:   ind,
		Industries: e.store.Industries(),
		Metrics:    results,
		Fallbacks:  []string(fb),
	}
}
