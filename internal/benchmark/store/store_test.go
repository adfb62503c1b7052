// internal/benchmark/store/store_test.go
package store

import (
	"testing"

	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Tier lookup
// ==========================

func TestStore_BucketTier(t *testing.T) {
	s := New()

	tests := []struct {
		name      string
		metric    Metric
		bucket    bucket.Bucket
		expected  models.Tier
		direction models.Direction
		fallback  bool
	}{
		{
			name:      "burn multiple smallest bucket",
			metric:    MetricBurnMultiple,
			bucket:    bucket.Under10M,
			expected:  models.Tier{Top: 1.0, Median: 2.0, Bottom: 3.0},
			direction: models.LowerIsBetter,
		},
		{
			name:      "runway largest bucket",
			metric:    MetricRunway,
			bucket:    bucket.Over200M,
			expected:  models.Tier{Top: 46, Median: 34, Bottom: 22},
			direction: models.HigherIsBetter,
		},
		{
			name:      "cac payback 50-100",
			metric:    MetricCACPayback,
			bucket:    bucket.From50M,
			expected:  models.Tier{Top: 12, Median: 18, Bottom: 24},
			direction: models.LowerIsBetter,
		},
		{
			name:      "rule of 40 derived from quartile points",
			metric:    MetricRuleOf40,
			bucket:    bucket.From10M,
			expected:  models.Tier{Top: 130, Median: 50, Bottom: 0},
			direction: models.HigherIsBetter,
		},
		{
			name:      "unknown bucket uses default bucket",
			metric:    MetricBurnMultiple,
			bucket:    bucket.Bucket("$1B+"),
			expected:  models.Tier{Top: 0.9, Median: 1.8, Bottom: 2.8},
			direction: models.LowerIsBetter,
			fallback:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.BucketTier(tt.metric, tt.bucket)
			assert.True(t, got.Found)
			assert.Equal(t, tt.expected, got.Tier)
			assert.Equal(t, tt.direction, got.Direction)
			assert.Equal(t, tt.fallback, got.Fallback)
		})
	}
}

func TestStore_IndustryTier(t *testing.T) {
	s := New()

	t.Run("override present", func(t *testing.T) {
		got := s.IndustryTier(MetricARRGrowth, "security")
		assert.Equal(t, models.Tier{Top: 145, Median: 110, Bottom: 75}, got.Tier)
		assert.Equal(t, Category("security"), got.Category)
		assert.False(t, got.Fallback)
	})

	t.Run("industry without override falls back to base", func(t *testing.T) {
		got := s.IndustryTier(MetricNetRetention, "security")
		assert.Equal(t, models.Tier{Top: 125, Median: 110, Bottom: 95}, got.Tier)
		assert.Equal(t, CategoryBase, got.Category)
		assert.True(t, got.Fallback)
	})

	t.Run("unknown industry falls back to base", func(t *testing.T) {
		got := s.IndustryTier(MetricFCFMargin, "gaming")
		assert.Equal(t, models.Tier{Top: 10, Median: -10, Bottom: -30}, got.Tier)
		assert.True(t, got.Fallback)
	})

	t.Run("all industries is the base table", func(t *testing.T) {
		got := s.IndustryTier(MetricMagicNumber, "all")
		assert.Equal(t, models.Tier{Top: 1.5, Median: 1.0, Bottom: 0.6}, got.Tier)
		assert.False(t, got.Fallback)
	})
}

func TestStore_MotionAndStageTiers(t *testing.T) {
	s := New()

	assert.Equal(t, models.Tier{Top: 8, Median: 5, Bottom: 3}, s.MotionTier(MetricLTVToCAC, models.MotionProductLed).Tier)
	assert.Equal(t, models.Tier{Top: 6, Median: 4, Bottom: 2.5}, s.MotionTier(MetricLTVToCAC, models.MotionHybrid).Tier)

	unknown := s.MotionTier(MetricLTVToCAC, models.GrowthMotion("Channel-led"))
	assert.Equal(t, models.Tier{Top: 5, Median: 3, Bottom: 2}, unknown.Tier)
	assert.True(t, unknown.Fallback)

	ce := s.StageTier(MetricCapitalEfficiency, bucket.StageUnder5M)
	assert.Equal(t, models.Tier{Top: 0.3, Median: 0.2, Bottom: 0.1}, ce.Tier)

	raised := s.StageTier(MetricRaisedPerARR, bucket.StageOver50M)
	assert.Equal(t, models.Tier{Top: 1.5, Median: 3, Bottom: 4.5}, raised.Tier)
	assert.Equal(t, models.LowerIsBetter, raised.Direction)
}

func TestStore_SummaryTier(t *testing.T) {
	s := New()

	churn := s.SummaryTier(MetricChurnRate)
	assert.Equal(t, 8.0, churn.Tier.Top)
	assert.Equal(t, 12.0, churn.Tier.Median)
	assert.Equal(t, models.LowerIsBetter, churn.Direction)

	fte := s.SummaryTier(MetricARRPerFTE)
	assert.Equal(t, 195000.0, fte.Tier.Top)

	// Base lookups for summary-only metrics still answer.
	base := s.BucketTier(MetricChurnRate, bucket.From25M)
	assert.True(t, base.Found)
	assert.True(t, base.Fallback)
	assert.Equal(t, CategorySummary, base.Category)
}

func TestStore_UnknownMetric(t *testing.T) {
	got := New().Tier(Metric("nps"), CategoryBase, string(bucket.From10M))
	assert.False(t, got.Found)
	assert.Equal(t, models.Tier{}, got.Tier)
}

func TestStore_EveryMetricAnswersForEveryBucket(t *testing.T) {
	s := New()
	for metric := range s.tables {
		for _, b := range bucket.All() {
			got := s.BucketTier(metric, b)
			require.True(t, got.Found, "metric %s bucket %s", metric, b)
		}
	}
}

// ==========================
// Profiles
// ==========================

func TestStore_Profiles(t *testing.T) {
	s := New()

	assert.Equal(t, Split{SalesMarketing: 48, RD: 37, GA: 15}, s.SpendProfile(bucket.From10M))
	assert.Equal(t, Split{SalesMarketing: 48, RD: 37, GA: 15}, s.SpendProfile("unknown"))

	assert.Equal(t, Split{SalesMarketing: 44, RD: 41, GA: 15}, s.HeadcountProfile(bucket.From25M, models.MotionProductLed))
	assert.Equal(t, Split{SalesMarketing: 50, RD: 35, GA: 15}, s.HeadcountProfile(bucket.From25M, models.MotionHybrid))

	assert.Equal(t, Funnel{NewLogo: 70, Expansion: 30, Churn: 9}, s.FunnelProfile(bucket.From25M))

	r40 := s.RuleOf40Profile(bucket.From100M)
	assert.Equal(t, 100.0, r40.Top.Score())
	assert.Equal(t, 50.0, r40.Median.Score())

	assert.Equal(t, MagicNumbers{Gross: 4.5, Net: 3.5}, s.MagicNumbers(models.MotionProductLed, bucket.Under10M))
	assert.Equal(t, MagicNumbers{Gross: 1.2, Net: 0.9}, s.MagicNumbers(models.MotionHybrid, bucket.From100M))

	assert.Equal(t, Split{SalesMarketing: 45, RD: 40, GA: 15}, s.OpExSplit(models.MotionProductLed))
	assert.Equal(t, Split{SalesMarketing: 55, RD: 30, GA: 15}, s.OpExSplit(models.MotionHybrid))

	assert.Equal(t, 0.7, s.ValuationScaleMultiplier(bucket.Under10M))
	assert.Equal(t, 1.0, s.ValuationScaleMultiplier("unknown"))
}

func TestStore_Industries(t *testing.T) {
	s := New()
	inds := s.Industries()
	require.Len(t, inds, 8)
	assert.Equal(t, "All Industries", inds[0].Name)

	ind, ok := s.ResolveIndustry("fintech")
	assert.True(t, ok)
	assert.Equal(t, "Enterprise Fintech", ind.Name)

	ind, ok = s.ResolveIndustry("gaming")
	assert.False(t, ok)
	assert.Equal(t, "all", ind.Key)
}
