// internal/benchmark/calculator/calculator_test.go
package calculator

import (
	"math"
	"math/rand/v2"
	"testing"

	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Funding Tests
// ==========================

func TestFunding_DefaultProfile(t *testing.T) {
	got := Funding(models.DefaultFundingProfile(), 2025)

	assert.Equal(t, 0.20, Round(got.CapitalEfficiencyRatio, 2))
	assert.Equal(t, 0.30, Round(got.ARRGenerationMultiple, 2))
	assert.Equal(t, 5.00, Round(got.AmountRaisedPerARR, 2))
	assert.Equal(t, 5, got.YearsFromFounding)
	assert.Equal(t, 4, got.YearsFromFunding)
	// (10/1)^(1/4) - 1
	assert.InDelta(t, 77.83, got.CAGR, 0.01)
}

func TestFunding_CapitalGuards(t *testing.T) {
	for _, capital := range []float64{0, -1, -1e9, 0.5, math.Inf(-1)} {
		ce := CapitalEfficiency(10, capital)
		agm := ARRGenerationMultiple(15, capital)

		assert.False(t, math.IsNaN(ce) || math.IsInf(ce, 0), "capital %v", capital)
		assert.False(t, math.IsNaN(agm) || math.IsInf(agm, 0), "capital %v", capital)
	}

	assert.Equal(t, 10.0, CapitalEfficiency(10, 0))
	assert.Equal(t, 15.0, ARRGenerationMultiple(15, -5))
}

func TestRaisedPerARR(t *testing.T) {
	tests := []struct {
		name       string
		capital    float64
		currentARR float64
		expected   float64
	}{
		{name: "normal", capital: 50, currentARR: 10, expected: 5},
		{name: "zero arr returns capital", capital: 50, currentARR: 0, expected: 50},
		{name: "negative arr returns capital", capital: 42.5, currentARR: -3, expected: 42.5},
		{name: "zero everything", capital: 0, currentARR: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RaisedPerARR(tt.capital, tt.currentARR))
		})
	}
}

func TestCAGR(t *testing.T) {
	t.Run("zero or negative years is zero", func(t *testing.T) {
		for _, years := range []int{0, -1, -10} {
			assert.Equal(t, 0.0, CAGR(100, 1, years))
			assert.Equal(t, 0.0, CAGR(0, 0, years))
		}
	})

	t.Run("doubling over one year", func(t *testing.T) {
		assert.InDelta(t, 100.0, CAGR(2, 1, 1), 1e-9)
	})

	t.Run("first round without arr uses minimum", func(t *testing.T) {
		assert.InDelta(t, 900.0, CAGR(1, 0, 1), 1e-9)
	})

	t.Run("negative current arr stays finite", func(t *testing.T) {
		got := CAGR(-5, 1, 2)
		assert.False(t, math.IsNaN(got))
		assert.Equal(t, -100.0, got)
	})
}

func TestFunding_ZeroYearsDefaultToCurrent(t *testing.T) {
	got := Funding(models.FundingProfile{TotalCapitalRaised: 10, CurrentARR: 5}, 2025)
	assert.Equal(t, 0, got.YearsFromFounding)
	assert.Equal(t, 0, got.YearsFromFunding)
	assert.Equal(t, 0.0, got.CAGR)
}

func TestRoundMultiples(t *testing.T) {
	rounds := []models.FundingRound{
		{Year: 2023, ARRAtTime: 8, Valuation: 160},
		{Year: 2021, ARRAtTime: 0, Valuation: 20},
	}

	got := RoundMultiples(rounds)
	require.Len(t, got, 2)
	assert.Equal(t, 2023, got[0].Year, "input order is kept")
	assert.Equal(t, 20.0, got[0].Multiple)
	assert.True(t, got[0].Computable)
	assert.False(t, got[1].Computable)
	assert.Equal(t, 0.0, got[1].Multiple)
}

// ==========================
// Rule Tests
// ==========================

func TestRuleOf40(t *testing.T) {
	assert.Equal(t, 60.0, RuleOf40(80, -20))
	assert.Equal(t, 60.0, models.DefaultCompanyMetrics().RuleOf40())
}

func TestCACPayback(t *testing.T) {
	got, ok := CACPayback(0.8)
	assert.True(t, ok)
	assert.Equal(t, 15.0, got)

	got, ok = CACPayback(1.5)
	assert.True(t, ok)
	assert.Equal(t, 8.0, got)

	for _, magic := range []float64{0, -0.5} {
		got, ok = CACPayback(magic)
		assert.False(t, ok)
		assert.Equal(t, 0.0, got)
	}
}

func TestLTVToCAC(t *testing.T) {
	assert.Equal(t, 4.0, LTVToCAC(0.8, models.MotionSalesLed))
	assert.Equal(t, 5.2, LTVToCAC(0.8, models.MotionProductLed))
	assert.Equal(t, 4.0, LTVToCAC(0.8, models.MotionHybrid))
}

func TestRetentionLTVToCAC(t *testing.T) {
	got, ok := RetentionLTVToCAC(80, 80)
	assert.True(t, ok)
	assert.Equal(t, 3.2, got)

	_, ok = RetentionLTVToCAC(100, 75)
	assert.False(t, ok)
}

func TestBurnMultiple(t *testing.T) {
	got, ok := BurnMultiple(15, 10)
	assert.True(t, ok)
	assert.Equal(t, 1.5, got)

	_, ok = BurnMultiple(15, 0)
	assert.False(t, ok)
}

// ==========================
// Score Tests
// ==========================

func TestCalculateIPOReadiness_Default(t *testing.T) {
	got := CalculateIPOReadiness(models.DefaultCompanyMetrics())

	assert.Equal(t, 53, got.Score)
	assert.Equal(t, "On the Right Track", got.Label)
	require.Len(t, got.Breakdown, 8)

	var weights float64
	for _, s := range got.Breakdown {
		weights += s.Weight
	}
	assert.InDelta(t, 1.0, weights, 1e-9)
	assert.Equal(t, 20.0, got.Breakdown[0].Score)
}

func TestCalculateIPOReadiness_Extremes(t *testing.T) {
	best := models.CompanyMetrics{
		ARRScale: string(bucket.Over200M), ARRGrowth: 150, NetRetention: 140, FCFMargin: 20,
		GrossMargin: 85, MagicNumber: 2, ARRPerFTE: 300000, Runway: 48,
	}
	got := CalculateIPOReadiness(best)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, "IPO Ready", got.Label)

	worst := models.CompanyMetrics{ARRScale: string(bucket.Under10M), FCFMargin: -90}
	got = CalculateIPOReadiness(worst)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, "Early Stage", got.Label)
}

func TestScaleScore(t *testing.T) {
	expected := []float64{0, 20, 40, 60, 80, 100}
	for i, b := range bucket.All() {
		assert.Equal(t, expected[i], ScaleScore(string(b)), string(b))
	}
	assert.Equal(t, 20.0, ScaleScore("garbage"))
}

func TestCalculateResilience_Default(t *testing.T) {
	got := CalculateResilience(models.DefaultCompanyMetrics())

	// 27 + 30 + 15 + 12.5 + 10.625
	assert.Equal(t, 95, got.Score)
	assert.Equal(t, "Highly Resilient", got.Category)
	require.Len(t, got.Breakdown, 7)
	assert.Equal(t, 90.0, got.Breakdown[0].Score)
	assert.Equal(t, 85.0, got.Breakdown[4].Score)
	assert.Equal(t, 0.0, got.Breakdown[5].Weight)
	assert.Equal(t, 75.0, got.Breakdown[5].Score, "burn multiple 1.5")
}

func TestCalculateResilience_Categories(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{85, "Highly Resilient"},
		{84, "Resilient"},
		{70, "Resilient"},
		{55, "Moderately Resilient"},
		{54, "Needs Improvement"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ResilienceCategory(tt.score))
	}
}

func TestCalculateResilience_AttainmentClamped(t *testing.T) {
	m := models.DefaultCompanyMetrics()
	m.ToplineAttainment = 140
	m.BottomlineAttainment = -20

	got := CalculateResilience(m)
	assert.Equal(t, 100.0, got.Breakdown[0].Score)
	assert.Equal(t, 0.0, got.Breakdown[4].Score)
}

func TestScores_AlwaysBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	wild := func() float64 {
		switch r.IntN(6) {
		case 0:
			return math.NaN()
		case 1:
			return math.Inf(1)
		case 2:
			return math.Inf(-1)
		default:
			return (r.Float64() - 0.5) * 1e6
		}
	}
	labels := append([]string{"", "nope"}, func() []string {
		var out []string
		for _, b := range bucket.All() {
			out = append(out, string(b))
		}
		return out
	}()...)

	for i := 0; i < 2000; i++ {
		m := models.CompanyMetrics{
			ARRScale:             labels[r.IntN(len(labels))],
			ARRGrowth:            wild(),
			NetRetention:         wild(),
			FCFMargin:            wild(),
			GrossMargin:          wild(),
			MagicNumber:          wild(),
			ARRPerFTE:            wild(),
			Runway:               wild(),
			BurnMultiple:         wild(),
			ToplineAttainment:    wild(),
			BottomlineAttainment: wild(),
		}

		ipo := CalculateIPOReadiness(m)
		res := CalculateResilience(m)
		require.GreaterOrEqual(t, ipo.Score, 0)
		require.LessOrEqual(t, ipo.Score, 100)
		require.GreaterOrEqual(t, res.Score, 0)
		require.LessOrEqual(t, res.Score, 100)
	}
}

// ==========================
// Rounding
// ==========================

func TestRound(t *testing.T) {
	assert.Equal(t, 0.15, Round(0.145, 2))
	assert.Equal(t, 15.0, Round(15.000000000000002, 0))
	assert.Equal(t, -2.0, Round(-1.5, 0))
	assert.Equal(t, 0.0, Round(math.NaN(), 2))
	assert.Equal(t, 0.0, Round(math.Inf(1), 2))
	assert.Equal(t, 3, RoundInt(2.5))
}
