// internal/benchmark/rating/rating.go
package rating

import "saas-benchmarks/internal/models"

// Rating is the qualitative bracket of a value against its tier.
type Rating string

const (
	Exceptional      Rating = "Exceptional"
	AboveAverage     Rating = "Above Average"
	BelowAverage     Rating = "Below Average"
	NeedsImprovement Rating = "Needs Improvement"
)

// Quartile labels used on summary cards.
const (
	TopQuartile       = "Top Quartile"
	AboveAverageLabel = "Above Average"
	BelowAverageLabel = "Below Average"
)

// Rank orders ratings from best (0) to worst (3).
func (r Rating) Rank() int {
	switch r {
	case Exceptional:
		return 0
	case AboveAverage:
		return 1
	case BelowAverage:
		return 2
	default:
		return 3
	}
}

// QuartileLabel is the display label for the rating's bracket.
func (r Rating) QuartileLabel() string {
	if r == Exceptional {
		return TopQuartile
	}
	return string(r)
}

// AtLeastMedian reports whether the rating is median or better.
func (r Rating) AtLeastMedian() bool {
	return r.Rank() <= 1
}

// Classify brackets value against tier. A value equal to a boundary falls
// into the better bracket. For lower-is-better metrics every comparison is
// inverted. NaN lands in the worst bracket.
func Classify(value float64, tier models.Tier, dir models.Direction) Rating {
	switch {
	case better(value, tier.Top, dir):
		return Exceptional
	case better(value, tier.Median, dir):
		return AboveAverage
	case better(value, tier.Bottom, dir):
		return BelowAverage
	default:
		return NeedsImprovement
	}
}

// CardLabel is the three-way summary-card label, which only distinguishes
// the top and median thresholds.
func CardLabel(value float64, tier models.Tier, dir models.Direction) string {
	switch {
	case better(value, tier.Top, dir):
		return TopQuartile
	case better(value, tier.Median, dir):
		return AboveAverageLabel
	default:
		return BelowAverageLabel
	}
}

// better reports whether value meets threshold in the metric's direction.
func better(value, threshold float64, dir models.Direction) bool {
	if dir == models.LowerIsBetter {
		return value <= threshold
	}
	return value >= threshold
}
