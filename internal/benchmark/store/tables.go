// internal/benchmark/store/tables.go
package store

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"
)

func tier(top, median, bottom float64) models.Tier {
	return models.Tier{Top: top, Median: median, Bottom: bottom}
}

// byBucket builds a bucket-keyed row set in ascending bucket order.
func byBucket(tiers ...models.Tier) map[string]models.Tier {
	out := make(map[string]models.Tier, len(tiers))
	for i, b := range bucket.All() {
		if i < len(tiers) {
			out[string(b)] = tiers[i]
		}
	}
	return out
}

func anyScale(t models.Tier) map[string]models.Tier {
	return map[string]models.Tier{AnyScale: t}
}

func tierTables() map[Metric]table {
	defaultBucket := string(bucket.Default)
	defaultStage := string(bucket.DefaultStage)

	tables := map[Metric]table{
		MetricARRGrowth: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:    anyScale(tier(135, 100, 70)),
				CategorySummary: anyScale(tier(135, 100, 100)),
				"security":      anyScale(tier(145, 110, 75)),
				"vertical":      anyScale(tier(120, 90, 65)),
				"collaboration": anyScale(tier(150, 120, 80)),
				"data":          anyScale(tier(140, 105, 75)),
				"fintech":       anyScale(tier(125, 95, 65)),
			},
		},
		MetricNetRetention: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:    anyScale(tier(125, 110, 95)),
				CategorySummary: anyScale(tier(125, 110, 110)),
				"backoffice":    anyScale(tier(120, 108, 90)),
				"vertical":      anyScale(tier(130, 115, 100)),
				"fintech":       anyScale(tier(135, 120, 105)),
			},
		},
		MetricGrossMargin: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:    anyScale(tier(85, 75, 65)),
				CategorySummary: anyScale(tier(80, 70, 70)),
				"security":      anyScale(tier(87, 78, 68)),
				"collaboration": anyScale(tier(90, 82, 70)),
				"data":          anyScale(tier(85, 78, 68)),
			},
		},
		MetricMagicNumber: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:     anyScale(tier(1.5, 1.0, 0.6)),
				CategorySummary:  anyScale(tier(1.5, 1.0, 1.0)),
				"backoffice":     anyScale(tier(1.3, 0.9, 0.5)),
				"salesmarketing": anyScale(tier(1.7, 1.2, 0.7)),
			},
		},
		MetricFCFMargin: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:     anyScale(tier(10, -10, -30)),
				"salesmarketing": anyScale(tier(5, -15, -35)),
				"fintech":        anyScale(tier(15, -5, -25)),
			},
		},
		MetricRuleOf40: {
			direction:    models.HigherIsBetter,
			defaultScale: defaultBucket,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:    ruleOf40Tiers(),
				CategorySummary: anyScale(tier(70, 40, 40)),
			},
		},
		MetricARRPerFTE: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategorySummary: anyScale(tier(195000, 150000, 150000)),
			},
		},
		MetricBurnMultiple: {
			direction:    models.LowerIsBetter,
			defaultScale: defaultBucket,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byBucket(
					tier(1.0, 2.0, 3.0),
					tier(0.9, 1.8, 2.8),
					tier(0.8, 1.6, 2.6),
					tier(0.7, 1.4, 2.4),
					tier(0.6, 1.2, 2.2),
					tier(0.5, 1.0, 2.0),
				),
				CategorySummary: anyScale(tier(1.0, 2.0, 2.0)),
			},
		},
		MetricRunway: {
			direction:    models.HigherIsBetter,
			defaultScale: defaultBucket,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byBucket(
					tier(36, 24, 12),
					tier(38, 26, 14),
					tier(40, 28, 16),
					tier(42, 30, 18),
					tier(44, 32, 20),
					tier(46, 34, 22),
				),
				CategorySummary: anyScale(tier(24, 18, 18)),
			},
		},
		MetricChurnRate: {
			direction: models.LowerIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategorySummary: anyScale(tier(8, 12, 12)),
			},
		},
		MetricCACPayback: {
			direction:    models.LowerIsBetter,
			defaultScale: defaultBucket,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byBucket(
					tier(6, 12, 18),
					tier(8, 14, 20),
					tier(10, 16, 22),
					tier(12, 18, 24),
					tier(14, 20, 26),
					tier(16, 22, 28),
				),
			},
		},
		MetricLTVToCAC: {
			direction: models.HigherIsBetter,
			rows: map[Category]map[string]models.Tier{
				CategoryBase:                      anyScale(tier(5, 3, 2)),
				Category(models.MotionSalesLed):   anyScale(tier(5, 3, 2)),
				Category(models.MotionProductLed): anyScale(tier(8, 5, 3)),
				Category(models.MotionHybrid):     anyScale(tier(6, 4, 2.5)),
			},
		},
		MetricCapitalEfficiency: {
			direction:    models.HigherIsBetter,
			defaultScale: defaultStage,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byStage(
					tier(0.3, 0.2, 0.1),
					tier(0.4, 0.25, 0.15),
					tier(0.45, 0.3, 0.2),
					tier(0.5, 0.35, 0.25),
				),
			},
		},
		MetricARRGenerationMultiple: {
			direction:    models.HigherIsBetter,
			defaultScale: defaultStage,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byStage(
					tier(0.4, 0.25, 0.15),
					tier(0.5, 0.35, 0.2),
					tier(0.6, 0.4, 0.25),
					tier(0.7, 0.5, 0.3),
				),
			},
		},
		MetricRaisedPerARR: {
			direction:    models.LowerIsBetter,
			defaultScale: defaultStage,
			rows: map[Category]map[string]models.Tier{
				CategoryBase: byStage(
					tier(3, 5, 10),
					tier(2.5, 4, 7),
					tier(2, 3.5, 5),
					tier(1.5, 3, 4.5),
				),
			},
		},
	}

	return tables
}

func byStage(tiers ...models.Tier) map[string]models.Tier {
	out := make(map[string]models.Tier, len(tiers))
	for i, s := range bucket.Stages() {
		if i < len(tiers) {
			out[string(s)] = tiers[i]
		}
	}
	return out
}

// ruleOf40Tiers sums growth and FCF margin at each quartile point.
func ruleOf40Tiers() map[string]models.Tier {
	out := make(map[string]models.Tier)
	for b, p := range ruleOf40Profiles() {
		out[string(b)] = tier(p.Top.Score(), p.Median.Score(), p.Bottom.Score())
	}
	return out
}

func spendProfiles() map[bucket.Bucket]Split {
	return map[bucket.Bucket]Split{
		bucket.Under10M: {SalesMarketing: 45, RD: 40, GA: 15},
		bucket.From10M:  {SalesMarketing: 48, RD: 37, GA: 15},
		bucket.From25M:  {SalesMarketing: 50, RD: 35, GA: 15},
		bucket.From50M:  {SalesMarketing: 52, RD: 33, GA: 15},
		bucket.From100M: {SalesMarketing: 54, RD: 31, GA: 15},
		bucket.Over200M: {SalesMarketing: 56, RD: 29, GA: 15},
	}
}

// headcountProfiles: product-led companies shift headcount toward R&D;
// every other motion uses the spend split.
func headcountProfiles() map[models.GrowthMotion]map[bucket.Bucket]Split {
	return map[models.GrowthMotion]map[bucket.Bucket]Split{
		models.MotionProductLed: {
			bucket.Under10M: {SalesMarketing: 40, RD: 45, GA: 15},
			bucket.From10M:  {SalesMarketing: 42, RD: 43, GA: 15},
			bucket.From25M:  {SalesMarketing: 44, RD: 41, GA: 15},
			bucket.From50M:  {SalesMarketing: 46, RD: 39, GA: 15},
			bucket.From100M: {SalesMarketing: 48, RD: 37, GA: 15},
			bucket.Over200M: {SalesMarketing: 50, RD: 35, GA: 15},
		},
		models.MotionSalesLed: spendProfiles(),
	}
}

func funnelProfiles() map[bucket.Bucket]Funnel {
	return map[bucket.Bucket]Funnel{
		bucket.Under10M: {NewLogo: 80, Expansion: 20, Churn: 8},
		bucket.From10M:  {NewLogo: 75, Expansion: 25, Churn: 10},
		bucket.From25M:  {NewLogo: 70, Expansion: 30, Churn: 9},
		bucket.From50M:  {NewLogo: 65, Expansion: 35, Churn: 11},
		bucket.From100M: {NewLogo: 55, Expansion: 45, Churn: 9},
		bucket.Over200M: {NewLogo: 45, Expansion: 55, Churn: 10},
	}
}

func ruleOf40Profiles() map[bucket.Bucket]RuleOf40Profile {
	point := func(g, f float64) RuleOf40Point { return RuleOf40Point{Growth: g, FCFMargin: f} }
	return map[bucket.Bucket]RuleOf40Profile{
		bucket.Under10M: {Top: point(180, -40), Median: point(120, -60), Bottom: point(80, -80)},
		bucket.From10M:  {Top: point(160, -30), Median: point(100, -50), Bottom: point(70, -70)},
		bucket.From25M:  {Top: point(140, -20), Median: point(90, -40), Bottom: point(60, -60)},
		bucket.From50M:  {Top: point(120, -10), Median: point(80, -30), Bottom: point(50, -50)},
		bucket.From100M: {Top: point(100, 0), Median: point(70, -20), Bottom: point(40, -40)},
		bucket.Over200M: {Top: point(80, 10), Median: point(60, -10), Bottom: point(30, -30)},
	}
}

func magicNumberProfiles() map[models.GrowthMotion]map[bucket.Bucket]MagicNumbers {
	return map[models.GrowthMotion]map[bucket.Bucket]MagicNumbers{
		models.MotionSalesLed: {
			bucket.Under10M: {Gross: 2.3, Net: 1.8},
			bucket.From10M:  {Gross: 1.5, Net: 1.2},
			bucket.From25M:  {Gross: 1.5, Net: 1.2},
			bucket.From50M:  {Gross: 1.5, Net: 1.2},
			bucket.From100M: {Gross: 1.2, Net: 0.9},
			bucket.Over200M: {Gross: 1.1, Net: 0.8},
		},
		models.MotionProductLed: {
			bucket.Under10M: {Gross: 4.5, Net: 3.5},
			bucket.From10M:  {Gross: 4.0, Net: 3.0},
			bucket.From25M:  {Gross: 3.5, Net: 2.5},
			bucket.From50M:  {Gross: 3.0, Net: 2.0},
			bucket.From100M: {Gross: 2.5, Net: 1.5},
			bucket.Over200M: {Gross: 2.0, Net: 1.0},
		},
	}
}

func opexProfiles() map[models.GrowthMotion]Split {
	return map[models.GrowthMotion]Split{
		models.MotionSalesLed:   {SalesMarketing: 55, RD: 30, GA: 15},
		models.MotionProductLed: {SalesMarketing: 45, RD: 40, GA: 15},
	}
}

func valuationScaleMultipliers() map[bucket.Bucket]float64 {
	return map[bucket.Bucket]float64{
		bucket.Under10M: 0.7,
		bucket.From10M:  0.8,
		bucket.From25M:  0.9,
		bucket.From50M:  1.0,
		bucket.From100M: 1.1,
		bucket.Over200M: 1.2,
	}
}

func industryCatalog() []Industry {
	return []Industry{
		{Key: "all", Name: "All Industries"},
		{Key: "security", Name: "Security & Infrastructure"},
		{Key: "backoffice", Name: "Back Office & Operations"},
		{Key: "vertical", Name: "Vertical SaaS"},
		{Key: "collaboration", Name: "Collaboration & Workflow"},
		{Key: "salesmarketing", Name: "Sales & Marketing"},
		{Key: "data", Name: "Data & Analytics"},
		{Key: "fintech", Name: "Enterprise Fintech"},
	}
}
