// internal/benchmark/store/store.go
package store

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"
)

// Metric names a benchmarked metric.
type Metric string

const (
	MetricARRGrowth             Metric = "arrGrowth"
	MetricNetRetention          Metric = "netRetention"
	MetricGrossMargin           Metric = "grossMargin"
	MetricMagicNumber           Metric = "magicNumber"
	MetricFCFMargin             Metric = "fcfMargin"
	MetricRuleOf40              Metric = "ruleOf40"
	MetricARRPerFTE             Metric = "arrPerFte"
	MetricBurnMultiple          Metric = "burnMultiple"
	MetricRunway                Metric = "runway"
	MetricChurnRate             Metric = "churnRate"
	MetricCACPayback            Metric = "cacPayback"
	MetricLTVToCAC              Metric = "ltvToCac"
	MetricCapitalEfficiency     Metric = "capitalEfficiency"
	MetricARRGenerationMultiple Metric = "arrGenerationMultiple"
	MetricRaisedPerARR          Metric = "amountRaisedPerArr"
)

// Category partitions a metric's table. The base category is the empty
// string; industries, growth motions and the dashboard summary cards are the
// other partitions.
type Category string

const (
	CategoryBase    Category = ""
	CategorySummary Category = "summary"
)

// AnyScale keys rows that do not vary by bucket.
const AnyScale = ""

// table is one metric's tiers: category -> scale key -> tier.
type table struct {
	direction    models.Direction
	defaultScale string
	rows         map[Category]map[string]models.Tier
}

// Benchmark is the result of a tier lookup. Fallback is set when the
// requested category or scale was substituted.
type Benchmark struct {
	Metric    Metric           `json:"metric"`
	Tier      models.Tier      `json:"tier"`
	Direction models.Direction `json:"direction"`
	Category  Category         `json:"category,omitempty"`
	Scale     string           `json:"scale,omitempty"`
	Found     bool             `json:"found"`
	Fallback  bool             `json:"fallback"`
}

// Store is the read-only benchmark table set. Construct it with New; it is
// never mutated afterwards and is safe to share.
type Store struct {
	tables         map[Metric]table
	spend          map[bucket.Bucket]Split
	headcount      map[models.GrowthMotion]map[bucket.Bucket]Split
	funnel         map[bucket.Bucket]Funnel
	ruleOf40       map[bucket.Bucket]RuleOf40Profile
	magic          map[models.GrowthMotion]map[bucket.Bucket]MagicNumbers
	opex           map[models.GrowthMotion]Split
	valuationScale map[bucket.Bucket]float64
	industries     []Industry
}

func New() *Store {
	return &Store{
		tables:         tierTables(),
		spend:          spendProfiles(),
		headcount:      headcountProfiles(),
		funnel:         funnelProfiles(),
		ruleOf40:       ruleOf40Profiles(),
		magic:          magicNumberProfiles(),
		opex:           opexProfiles(),
		valuationScale: valuationScaleMultipliers(),
		industries:     industryCatalog(),
	}
}

// Tier looks up a metric's tier. It never fails: an unknown category uses
// the base table, an unknown scale uses the metric's default scale, and an
// unknown metric yields a zero tier with Found=false.
func (s *Store) Tier(metric Metric, category Category, scale string) Benchmark {
	t, ok := s.tables[metric]
	if !ok {
		return Benchmark{Metric: metric, Category: category, Scale: scale}
	}

	out := Benchmark{Metric: metric, Direction: t.direction, Found: true}

	if rows, ok := t.rows[category]; ok {
		if tier, ok := rows[scale]; ok {
			out.Tier, out.Category, out.Scale = tier, category, scale
			return out
		}
		if tier, ok := rows[AnyScale]; ok {
			out.Tier, out.Category, out.Scale = tier, category, AnyScale
			return out
		}
	}

	// Base table for the same scale, then for the default scale.
	out.Fallback = category != CategoryBase
	base := t.rows[CategoryBase]
	for _, key := range []string{scale, AnyScale, t.defaultScale} {
		if tier, ok := base[key]; ok {
			if key != scale {
				out.Fallback = true
			}
			out.Tier, out.Category, out.Scale = tier, CategoryBase, key
			return out
		}
	}

	// Tables without a base partition still answer from their own default
	// scale, and finally from the summary-card thresholds.
	for _, cat := range []Category{category, CategorySummary} {
		if tier, ok := t.rows[cat][t.defaultScale]; ok {
			out.Fallback = true
			out.Tier, out.Category, out.Scale = tier, cat, t.defaultScale
			return out
		}
		if tier, ok := t.rows[cat][AnyScale]; ok {
			out.Fallback = cat != category || scale != AnyScale
			out.Tier, out.Category, out.Scale = tier, cat, AnyScale
			return out
		}
	}

	out.Found = false
	return out
}

// Direction reports whether higher or lower values are better for metric.
func (s *Store) Direction(metric Metric) models.Direction {
	return s.tables[metric].direction
}

// BucketTier is Tier keyed by an ARR bucket label.
func (s *Store) BucketTier(metric Metric, b bucket.Bucket) Benchmark {
	return s.Tier(metric, CategoryBase, string(b))
}

// IndustryTier looks up an industry-specific tier with base fallback.
func (s *Store) IndustryTier(metric Metric, industry string) Benchmark {
	if industry == "" || industry == "all" {
		return s.Tier(metric, CategoryBase, AnyScale)
	}
	return s.Tier(metric, Category(industry), AnyScale)
}

// MotionTier looks up a growth-motion tier with base fallback.
func (s *Store) MotionTier(metric Metric, motion models.GrowthMotion) Benchmark {
	return s.Tier(metric, Category(motion), AnyScale)
}

// StageTier looks up a funding-stage tier.
func (s *Store) StageTier(metric Metric, stage bucket.Stage) Benchmark {
	return s.Tier(metric, CategoryBase, string(stage))
}

// SummaryTier returns the dashboard summary-card thresholds for metric.
func (s *Store) SummaryTier(metric Metric) Benchmark {
	return s.Tier(metric, CategorySummary, AnyScale)
}
