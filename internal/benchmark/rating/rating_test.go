// internal/benchmark/rating/rating_test.go
package rating

import (
	"math"
	"testing"

	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
)

var growthTier = models.Tier{Top: 135, Median: 100, Bottom: 70}
var burnTier = models.Tier{Top: 1.0, Median: 2.0, Bottom: 3.0}

func TestClassify_HigherIsBetter(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected Rating
	}{
		{name: "above top", value: 150, expected: Exceptional},
		{name: "equal top", value: 135, expected: Exceptional},
		{name: "between top and median", value: 120, expected: AboveAverage},
		{name: "equal median", value: 100, expected: AboveAverage},
		{name: "between median and bottom", value: 80, expected: BelowAverage},
		{name: "equal bottom", value: 70, expected: BelowAverage},
		{name: "below bottom", value: 69.9, expected: NeedsImprovement},
		{name: "nan", value: math.NaN(), expected: NeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.value, growthTier, models.HigherIsBetter))
		})
	}
}

func TestClassify_LowerIsBetter(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected Rating
	}{
		{name: "below top", value: 0.5, expected: Exceptional},
		{name: "equal top", value: 1.0, expected: Exceptional},
		{name: "equal median", value: 2.0, expected: AboveAverage},
		{name: "between median and bottom", value: 2.5, expected: BelowAverage},
		{name: "equal bottom", value: 3.0, expected: BelowAverage},
		{name: "worse than bottom", value: 3.1, expected: NeedsImprovement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.value, burnTier, models.LowerIsBetter))
		})
	}
}

func TestRating_Labels(t *testing.T) {
	assert.Equal(t, TopQuartile, Exceptional.QuartileLabel())
	assert.Equal(t, "Above Average", AboveAverage.QuartileLabel())
	assert.True(t, AboveAverage.AtLeastMedian())
	assert.False(t, BelowAverage.AtLeastMedian())
	assert.Equal(t, 3, NeedsImprovement.Rank())
}

func TestCardLabel(t *testing.T) {
	card := models.Tier{Top: 135, Median: 100, Bottom: 100}
	assert.Equal(t, TopQuartile, CardLabel(135, card, models.HigherIsBetter))
	assert.Equal(t, AboveAverageLabel, CardLabel(100, card, models.HigherIsBetter))
	assert.Equal(t, BelowAverageLabel, CardLabel(99, card, models.HigherIsBetter))

	churn := models.Tier{Top: 8, Median: 12, Bottom: 12}
	assert.Equal(t, TopQuartile, CardLabel(8, churn, models.LowerIsBetter))
	assert.Equal(t, AboveAverageLabel, CardLabel(10, churn, models.LowerIsBetter))
	assert.Equal(t, BelowAverageLabel, CardLabel(13, churn, models.LowerIsBetter))
}

func TestAssess(t *testing.T) {
	t.Run("capital efficiency uses its own narrative", func(t *testing.T) {
		got := Assess("capitalEfficiency", 0.2, models.Tier{Top: 0.45, Median: 0.3, Bottom: 0.2}, models.HigherIsBetter)
		assert.Equal(t, "Below Average", got.Rating)
		assert.Contains(t, got.Description, "less ARR per dollar raised")
		assert.Contains(t, got.Advice, "go-to-market strategy")
	})

	t.Run("generic narrative names the metric", func(t *testing.T) {
		got := Assess("burnMultiple", 0.8, burnTier, models.LowerIsBetter)
		assert.Equal(t, "Exceptional", got.Rating)
		assert.Contains(t, got.Description, "burn multiple")
		assert.Equal(t, "burnMultiple", got.Metric)
	})

	t.Run("unknown metric key is used verbatim", func(t *testing.T) {
		got := Assess("nps", 10, growthTier, models.HigherIsBetter)
		assert.Contains(t, got.Description, "nps")
	})
}

func TestFundingHighlights(t *testing.T) {
	tiers := FundingTiers{
		CapitalEfficiency:     models.Tier{Top: 0.45, Median: 0.3, Bottom: 0.2},
		ARRGenerationMultiple: models.Tier{Top: 0.6, Median: 0.4, Bottom: 0.25},
		RaisedPerARR:          models.Tier{Top: 2, Median: 3.5, Bottom: 5},
	}

	t.Run("default profile", func(t *testing.T) {
		m := calculator.FundingMetrics{CapitalEfficiencyRatio: 0.2, ARRGenerationMultiple: 0.3, AmountRaisedPerARR: 5, CAGR: 77.8}
		strengths, improvements := FundingHighlights(m, tiers)

		assert.Empty(t, strengths)
		assert.Equal(t, []string{
			"Capital efficiency ratio below industry median for your scale",
			"Total ARR generation relative to capital is below benchmarks",
			"Higher than median capital requirements per dollar of ARR",
		}, improvements)
	})

	t.Run("efficient fast grower", func(t *testing.T) {
		m := calculator.FundingMetrics{CapitalEfficiencyRatio: 0.3, ARRGenerationMultiple: 0.5, AmountRaisedPerARR: 3.5, CAGR: 120}
		strengths, improvements := FundingHighlights(m, tiers)

		assert.Len(t, strengths, 4)
		assert.Equal(t, "Impressive ARR growth rate of 120.0% since first funding", strengths[3])
		assert.Empty(t, improvements)
	})

	t.Run("slow growth is flagged", func(t *testing.T) {
		m := calculator.FundingMetrics{CapitalEfficiencyRatio: 1, ARRGenerationMultiple: 1, AmountRaisedPerARR: 1, CAGR: 12.34}
		_, improvements := FundingHighlights(m, tiers)
		assert.Equal(t, []string{"ARR growth rate of 12.3% indicates potential for acceleration"}, improvements)
	})
}

func TestFundingRecommendations(t *testing.T) {
	assert.Len(t, FundingRecommendations(), 4)
}
