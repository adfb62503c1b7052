// internal/benchmark/series/scenario.go
package series

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"saas-benchmarks/internal/benchmark/calculator"
	"saas-benchmarks/internal/models"
)

const (
	ProjectionYears    = 3
	defaultStartingARR = 10_000_000
	runwayDeclineYear  = 12.0
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.-]+`)
	leadingNumber = regexp.MustCompile(`^-?[0-9]*\.?[0-9]+`)
)

// ProjectionYear is one year of a 3-year plan. ARR and burn are in $M.
type ProjectionYear struct {
	Year         int     `json:"year"`
	ARR          float64 `json:"arr"`
	Burn         float64 `json:"burn"`
	RuleOf40     float64 `json:"ruleOf40"`
	NetRetention float64 `json:"netRetention"`
	Runway       float64 `json:"runway"`
}

// Preset is a predefined what-if adjustment to a baseline.
type Preset struct {
	Name        string  `json:"name"`
	GrowthDelta float64 `json:"arrGrowthDelta"`
	FCFDelta    float64 `json:"fcfMarginDelta"`
	NRRDelta    float64 `json:"netRetentionDelta"`
	MagicDelta  float64 `json:"magicNumberDelta"`
}

// Presets returns the predefined scenarios in display order.
func Presets() []Preset {
	return []Preset{
		{Name: "Growth Acceleration", GrowthDelta: 20, FCFDelta: -10, NRRDelta: 5, MagicDelta: -0.2},
		{Name: "Efficiency Focus", GrowthDelta: -10, FCFDelta: 15, NRRDelta: 0, MagicDelta: 0.3},
		{Name: "Balanced Growth", GrowthDelta: 10, FCFDelta: 5, NRRDelta: 3, MagicDelta: 0.1},
	}
}

// FindPreset looks a preset up by name.
func FindPreset(name string) (Preset, bool) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply returns base with the preset's deltas added.
func (p Preset) Apply(base models.CompanyMetrics) models.CompanyMetrics {
	out := base
	out.ARRGrowth = calculator.Round(base.ARRGrowth+p.GrowthDelta, 2)
	out.FCFMargin = calculator.Round(base.FCFMargin+p.FCFDelta, 2)
	out.NetRetention = calculator.Round(base.NetRetention+p.NRRDelta, 2)
	out.MagicNumber = calculator.Round(base.MagicNumber+p.MagicDelta, 2)
	return out
}

// StartingARR reads the first number in a bucket label as $M, so
// "$25M-$50M" starts at $25M. Labels without a number start at $10M.
func StartingARR(label string) float64 {
	digits := leadingNumber.FindString(nonNumeric.ReplaceAllString(label, ""))
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return defaultStartingARR
	}
	return v * 1_000_000
}

// Project compounds ARR at the growth rate for years 0..3. Burn is taken on
// the prior year's ARR and runway shrinks a year at a time while FCF is
// negative.
func Project(m models.CompanyMetrics) []ProjectionYear {
	current := StartingARR(m.ARRScale)
	growth := m.ARRGrowth / 100

	burnRate := 0.0
	runwayDecline := 0.0
	if m.FCFMargin < 0 {
		burnRate = math.Abs(m.FCFMargin) / 100
		runwayDecline = runwayDeclineYear
	}

	out := make([]ProjectionYear, 0, ProjectionYears+1)
	for year := 0; year <= ProjectionYears; year++ {
		burn := current * burnRate
		arr := current
		if year > 0 {
			arr = current * (1 + growth)
		}

		out = append(out, ProjectionYear{
			Year:         year,
			ARR:          calculator.Round(arr/1_000_000, 0),
			Burn:         calculator.Round(burn/1_000_000, 0),
			RuleOf40:     calculator.RuleOf40(m.ARRGrowth, m.FCFMargin),
			NetRetention: m.NetRetention,
			Runway:       m.Runway - float64(year)*runwayDecline,
		})

		current = arr
	}
	return out
}

// PlanSummary is the year-3 headline for one side of a comparison.
type PlanSummary struct {
	ARR                 float64 `json:"arr"`
	RuleOf40            float64 `json:"ruleOf40"`
	LTVToCAC            float64 `json:"ltvToCac"`
	LTVToCACAvailable   bool    `json:"ltvToCacAvailable"`
	CACPayback          float64 `json:"cacPayback"`
	CACPaybackAvailable bool    `json:"cacPaybackAvailable"`
}

type Insight struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ScenarioComparison is a baseline and an adjusted plan side by side.
type ScenarioComparison struct {
	Name             string           `json:"name"`
	Baseline         []ProjectionYear `json:"baseline"`
	Scenario         []ProjectionYear `json:"scenario"`
	BaselineSummary  PlanSummary      `json:"baselineSummary"`
	ScenarioSummary  PlanSummary      `json:"scenarioSummary"`
	ARRDifference    float64          `json:"arrDifference"`
	ARRChangePercent float64          `json:"arrChangePercent"`
	BurnDifference   float64          `json:"burnDifference"`
	AdditionalBurn   bool             `json:"additionalBurn"`
	Impact           []string         `json:"impact"`
	Insights         []Insight        `json:"insights"`
	KeyActions       []string         `json:"keyActions"`
}

var keyActions = []string{
	"Review your growth vs. efficiency balance quarterly",
	"Monitor burn multiple and adjust spending if exceeding 2.0x",
	"Prioritize initiatives that improve net retention",
	"Consider your position relative to fundraising windows",
}

// Compare projects both plans and explains the difference.
func Compare(name string, baseline, scenario models.CompanyMetrics) ScenarioComparison {
	base := Project(baseline)
	plan := Project(scenario)

	last := ProjectionYears
	arrDiff := plan[last].ARR - base[last].ARR

	changePct := 0.0
	if base[last].ARR != 0 {
		changePct = calculator.Round((plan[last].ARR/base[last].ARR-1)*100, 0)
	}

	burnDiff := totalBurn(plan) - totalBurn(base)

	out := ScenarioComparison{
		Name:             name,
		Baseline:         base,
		Scenario:         plan,
		BaselineSummary:  summarize(baseline, base[last]),
		ScenarioSummary:  summarize(scenario, plan[last]),
		ARRDifference:    arrDiff,
		ARRChangePercent: changePct,
		BurnDifference:   math.Abs(burnDiff),
		AdditionalBurn:   burnDiff > 0,
		Insights:         insights(baseline, scenario),
		KeyActions:       append([]string(nil), keyActions...),
	}
	out.Impact = impact(out)
	return out
}

func summarize(m models.CompanyMetrics, final ProjectionYear) PlanSummary {
	s := PlanSummary{ARR: final.ARR, RuleOf40: final.RuleOf40}
	s.LTVToCAC, s.LTVToCACAvailable = calculator.RetentionLTVToCAC(m.NetRetention, m.GrossMargin)
	s.CACPayback, s.CACPaybackAvailable = calculator.CACPayback(m.MagicNumber)
	return s
}

func totalBurn(years []ProjectionYear) float64 {
	var sum float64
	for _, y := range years {
		sum += y.Burn
	}
	return sum
}

func impact(c ScenarioComparison) []string {
	higher, change := "lower", "decrease"
	if c.ARRDifference > 0 {
		higher, change = "higher", "increase"
	}
	more := "less"
	if c.AdditionalBurn {
		more = "additional"
	}

	return []string{
		fmt.Sprintf("The %s scenario would result in $%gM %s ARR after %d years (%g%% %s).",
			c.Name, math.Abs(c.ARRDifference), higher, ProjectionYears, math.Abs(c.ARRChangePercent), change),
		fmt.Sprintf("This would require $%gM %s burn over %d years.", c.BurnDifference, more, ProjectionYears),
	}
}

func insights(baseline, scenario models.CompanyMetrics) []Insight {
	out := []Insight{}

	if scenario.ARRGrowth > baseline.ARRGrowth && scenario.FCFMargin < baseline.FCFMargin {
		out = append(out, Insight{
			Title: "Growth Investment Strategy",
			Body: "Investing in growth could yield significantly higher ARR, but ensure you have sufficient runway. " +
				"Consider raising additional capital if runway drops below 18 months.",
		})
	}

	if scenario.ARRGrowth < baseline.ARRGrowth && scenario.FCFMargin > baseline.FCFMargin {
		out = append(out, Insight{
			Title: "Efficiency Optimization Strategy",
			Body: "Focusing on efficiency will improve your Rule of 40 score and extend runway, but may limit long-term " +
				"growth potential. Consider balancing with targeted growth investments.",
		})
	}

	if scenario.NetRetention > baseline.NetRetention {
		out = append(out, Insight{
			Title: "Customer Success Focus",
			Body: fmt.Sprintf("Improving net retention from %g%% to %g%% would significantly improve LTV/CAC ratio "+
				"and long-term growth sustainability.", baseline.NetRetention, scenario.NetRetention),
		})
	}

	if scenario.MagicNumber > baseline.MagicNumber {
		out = append(out, Insight{
			Title: "Sales Efficiency Improvement",
			Body: fmt.Sprintf("Improving your magic number from %gx to %gx would reduce CAC payback from %s to %s months.",
				baseline.MagicNumber, scenario.MagicNumber, paybackText(baseline.MagicNumber), paybackText(scenario.MagicNumber)),
		})
	}

	return out
}

func paybackText(magic float64) string {
	months, ok := calculator.CACPayback(magic)
	if !ok {
		return "n/a"
	}
	return strconv.FormatFloat(months, 'f', 0, 64)
}
