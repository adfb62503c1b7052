// internal/models/benchmark.go
package models

import "fmt"

// Direction tells the rating classifier which way is better for a metric.
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter
)

func (d Direction) String() string {
	if d == LowerIsBetter {
		return "lower_is_better"
	}
	return "higher_is_better"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "lower_is_better":
		*d = LowerIsBetter
	case "higher_is_better", "":
		*d = HigherIsBetter
	default:
		return fmt.Errorf("unknown direction %q", string(b))
	}
	return nil
}

// Tier is the {top quartile, median, bottom quartile} reference for one
// metric within one bucket or category.
type Tier struct {
	Top    float64 `json:"topQuartile"`
	Median float64 `json:"median"`
	Bottom float64 `json:"bottomQuartile"`
}

// Assessment is the qualitative reading of one metric against its tier.
type Assessment struct {
	Metric      string `json:"metric"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
}
