// internal/benchmark/calculator/scores.go
package calculator

import (
	"math"

	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"
)

// SubScore is one weighted component of a composite score.
type SubScore struct {
	Metric      string  `json:"metric"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Score       float64 `json:"score"`
	Weight      float64 `json:"weight"`
	Target      float64 `json:"target,omitempty"`
	Goal        string  `json:"goal,omitempty"`
	Description string  `json:"description,omitempty"`
}

type IPOReadiness struct {
	Score     int        `json:"score"`
	Label     string     `json:"label"`
	Breakdown []SubScore `json:"breakdown"`
}

type Resilience struct {
	Score     int        `json:"score"`
	Category  string     `json:"category"`
	Breakdown []SubScore `json:"breakdown"`
}

// ladder maps a value to the score of the first threshold it meets, walking
// from the best threshold down. Values meeting none (including NaN) get floor.
type ladder struct {
	thresholds    []float64
	scores        []float64
	floor         float64
	lowerIsBetter bool
}

func (l ladder) score(v float64) float64 {
	for i, t := range l.thresholds {
		if (!l.lowerIsBetter && v >= t) || (l.lowerIsBetter && v <= t) {
			return l.scores[i]
		}
	}
	return l.floor
}

var ipoScores = []float64{100, 80, 60, 40, 20}

func ipoLadder(thresholds ...float64) ladder {
	return ladder{thresholds: thresholds, scores: ipoScores}
}

var (
	ipoGrowth       = ipoLadder(100, 80, 60, 40, 20)
	ipoNetRetention = ipoLadder(130, 120, 110, 100, 90)
	ipoFCFMargin    = ipoLadder(10, 0, -10, -20, -30)
	ipoGrossMargin  = ipoLadder(80, 75, 70, 65, 60)
	ipoMagicNumber  = ipoLadder(1.5, 1.2, 1.0, 0.8, 0.5)
	ipoARRPerFTE    = ipoLadder(250000, 200000, 150000, 100000, 50000)
	ipoRunway       = ipoLadder(36, 24, 18, 12, 6)
)

var resilienceScores = []float64{100, 75, 50}

func resilienceLadder(lowerIsBetter bool, thresholds ...float64) ladder {
	return ladder{thresholds: thresholds, scores: resilienceScores, floor: 25, lowerIsBetter: lowerIsBetter}
}

var (
	resNetNewARR    = resilienceLadder(false, 40, 30, 20)
	resGrowth       = resilienceLadder(false, 75, 50, 30)
	resRunway       = resilienceLadder(false, 24, 18, 12)
	resBurnMultiple = resilienceLadder(true, 1.0, 1.5, 2.0)
	resNetRetention = resilienceLadder(false, 125, 110, 100)
)

const (
	defaultToplineAttainment    = 90.0
	defaultBottomlineAttainment = 85.0
)

// ScaleScore scores ARR scale by bucket position: 0 for the smallest bucket
// up to 100 for the largest. Unknown labels score as the default bucket.
func ScaleScore(label string) float64 {
	return float64(bucket.FromLabel(label).Index() * 20)
}

// CalculateIPOReadiness is the weighted sum of eight tiered sub-scores.
func CalculateIPOReadiness(m models.CompanyMetrics) IPOReadiness {
	breakdown := []SubScore{
		{Metric: "arrScale", Name: "ARR Scale", Value: bucket.FromLabel(m.ARRScale).LowerBound(), Score: ScaleScore(m.ARRScale), Weight: 0.25, Target: 80},
		{Metric: "arrGrowth", Name: "ARR Growth", Value: m.ARRGrowth, Score: ipoGrowth.score(m.ARRGrowth), Weight: 0.15, Target: 80},
		{Metric: "netRetention", Name: "Net Retention", Value: m.NetRetention, Score: ipoNetRetention.score(m.NetRetention), Weight: 0.15, Target: 80},
		{Metric: "fcfMargin", Name: "FCF Margin", Value: m.FCFMargin, Score: ipoFCFMargin.score(m.FCFMargin), Weight: 0.15, Target: 60},
		{Metric: "grossMargin", Name: "Gross Margin", Value: m.GrossMargin, Score: ipoGrossMargin.score(m.GrossMargin), Weight: 0.10, Target: 80},
		{Metric: "magicNumber", Name: "Magic Number", Value: m.MagicNumber, Score: ipoMagicNumber.score(m.MagicNumber), Weight: 0.05, Target: 60},
		{Metric: "arrPerFte", Name: "ARR per FTE", Value: m.ARRPerFTE, Score: ipoARRPerFTE.score(m.ARRPerFTE), Weight: 0.05, Target: 60},
		{Metric: "runway", Name: "Runway", Value: m.Runway, Score: ipoRunway.score(m.Runway), Weight: 0.10, Target: 80},
	}

	score := weightedScore(breakdown)
	return IPOReadiness{Score: score, Label: IPOLabel(score), Breakdown: breakdown}
}

func IPOLabel(score int) string {
	switch {
	case score >= 80:
		return "IPO Ready"
	case score >= 60:
		return "Getting Close"
	case score >= 40:
		return "On the Right Track"
	default:
		return "Early Stage"
	}
}

// CalculateResilience is the weighted resilience score. Burn multiple and net
// retention are reported with zero weight.
func CalculateResilience(m models.CompanyMetrics) Resilience {
	topline := attainment(m.ToplineAttainment, defaultToplineAttainment)
	bottomline := attainment(m.BottomlineAttainment, defaultBottomlineAttainment)

	breakdown := []SubScore{
		{Metric: "toplineAttainment", Name: "Topline Attainment", Value: topline, Score: topline, Weight: 0.30,
			Goal: ">90%", Description: "Consistently meeting or exceeding ARR targets"},
		{Metric: "netNewArr", Name: "Net New ARR", Value: m.ARRGrowth, Score: resNetNewARR.score(m.ARRGrowth), Weight: 0.30,
			Goal: ">40%", Description: "Strong new ARR growth year over year"},
		{Metric: "arrGrowth", Name: "YoY ARR Growth", Value: m.ARRGrowth, Score: resGrowth.score(m.ARRGrowth), Weight: 0.15,
			Goal: ">75%", Description: "Maintaining high growth rate relative to scale"},
		{Metric: "runway", Name: "Runway", Value: m.Runway, Score: resRunway.score(m.Runway), Weight: 0.125,
			Goal: ">2 years", Description: "Sufficient cash to weather market fluctuations"},
		{Metric: "bottomlineAttainment", Name: "Bottomline Attainment", Value: bottomline, Score: bottomline, Weight: 0.125,
			Goal: ">90%", Description: "Meeting or exceeding profitability targets"},
		{Metric: "burnMultiple", Name: "Burn Multiple", Value: m.BurnMultiple, Score: resBurnMultiple.score(m.BurnMultiple)},
		{Metric: "netRetention", Name: "Net Retention", Value: m.NetRetention, Score: resNetRetention.score(m.NetRetention)},
	}

	score := weightedScore(breakdown)
	return Resilience{Score: score, Category: ResilienceCategory(score), Breakdown: breakdown}
}

func ResilienceCategory(score int) string {
	switch {
	case score >= 85:
		return "Highly Resilient"
	case score >= 70:
		return "Resilient"
	case score >= 55:
		return "Moderately Resilient"
	default:
		return "Needs Improvement"
	}
}

// attainment treats zero as unreported and clamps reported values to
// [0,100].
func attainment(v, fallback float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return fallback
	}
	return clamp(v, 0, 100)
}

func weightedScore(parts []SubScore) int {
	var total float64
	for _, p := range parts {
		total += p.Score * p.Weight
	}
	return int(clamp(Round(total, 0), 0, 100))
}
