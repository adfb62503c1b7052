// internal/benchmark/rating/assessment.go
package rating

import (
	"fmt"

	"saas-benchmarks/internal/models"
)

type text struct {
	description string
	advice      string
}

// capitalEfficiencyTexts are the funding-page narratives.
var capitalEfficiencyTexts = map[Rating]text{
	Exceptional: {
		description: "Your company demonstrates exceptional capital efficiency, generating ARR at a significantly higher rate than most SaaS companies at your scale.",
		advice:      "Consider leveraging your efficient growth model to potentially raise less capital or accelerate growth without additional funding.",
	},
	AboveAverage: {
		description: "Your company is more capital efficient than most SaaS companies at your scale, with solid ARR generation relative to capital raised.",
		advice:      "There's room to further optimize your capital efficiency by focusing on improving unit economics or expanding with minimal cost.",
	},
	BelowAverage: {
		description: "Your company is generating less ARR per dollar raised compared to industry benchmarks at your scale.",
		advice:      "Consider evaluating your go-to-market strategy, pricing, or cost structure to improve capital efficiency.",
	},
	NeedsImprovement: {
		description: "Your capital efficiency is significantly below industry benchmarks, which may impact your ability to raise future funding at favorable terms.",
		advice:      "Focus on improving unit economics, reducing burn, and identifying more efficient growth channels.",
	},
}

var genericTexts = map[Rating]text{
	Exceptional: {
		description: "Your %s is in the top quartile of comparable SaaS companies.",
		advice:      "Protect this strength and lead with it in investor conversations.",
	},
	AboveAverage: {
		description: "Your %s is above the median of comparable SaaS companies.",
		advice:      "Look for incremental gains that would move it into the top quartile.",
	},
	BelowAverage: {
		description: "Your %s trails the median of comparable SaaS companies.",
		advice:      "Identify the main driver of the gap and set a quarterly improvement target.",
	},
	NeedsImprovement: {
		description: "Your %s is in the bottom quartile of comparable SaaS companies.",
		advice:      "Make this a priority; investors will ask about it.",
	},
}

// DisplayNames maps metric keys to human-readable names.
var DisplayNames = map[string]string{
	"arrGrowth":             "ARR growth",
	"netRetention":          "net dollar retention",
	"grossMargin":           "gross margin",
	"magicNumber":           "magic number",
	"fcfMargin":             "FCF margin",
	"ruleOf40":              "Rule of 40 score",
	"arrPerFte":             "ARR per FTE",
	"burnMultiple":          "burn multiple",
	"runway":                "runway",
	"churnRate":             "churn rate",
	"cacPayback":            "CAC payback",
	"ltvToCac":              "LTV/CAC ratio",
	"capitalEfficiency":     "capital efficiency ratio",
	"arrGenerationMultiple": "ARR generation multiple",
	"amountRaisedPerArr":    "amount raised per $1 ARR",
}

func displayName(metric string) string {
	if name, ok := DisplayNames[metric]; ok {
		return name
	}
	return metric
}

// Assess classifies value and attaches the narrative for the metric.
func Assess(metric string, value float64, tier models.Tier, dir models.Direction) models.Assessment {
	r := Classify(value, tier, dir)

	if metric == "capitalEfficiency" {
		t := capitalEfficiencyTexts[r]
		return models.Assessment{Metric: metric, Rating: string(r), Description: t.description, Advice: t.advice}
	}

	t := genericTexts[r]
	return models.Assessment{
		Metric:      metric,
		Rating:      string(r),
		Description: fmt.Sprintf(t.description, displayName(metric)),
		Advice:      t.advice,
	}
}
