// internal/benchmark/calculator/rules.go
package calculator

import "saas-benchmarks/internal/models"

const (
	ltvPerMagic         = 5.0
	productLedLTVFactor = 1.3
	monthsPerYear       = 12.0
)

// RuleOf40 is YoY growth % plus FCF margin %.
func RuleOf40(growth, fcfMargin float64) float64 {
	return growth + fcfMargin
}

// BurnMultiple is net burn over net new ARR. ok is false when no net new ARR
// was added.
func BurnMultiple(netBurn, netNewARR float64) (float64, bool) {
	if netNewARR <= 0 {
		return 0, false
	}
	return finite(netBurn/netNewARR, 0), true
}

// CACPayback is 12 / magic number in whole months. ok is false for a
// non-positive magic number.
func CACPayback(magicNumber float64) (float64, bool) {
	if magicNumber <= 0 {
		return 0, false
	}
	return Round(monthsPerYear/magicNumber, 0), true
}

// LTVToCAC approximates LTV/CAC from the magic number, uplifted for
// product-led companies. Rounded to one decimal.
func LTVToCAC(magicNumber float64, motion models.GrowthMotion) float64 {
	v := magicNumber * ltvPerMagic
	if motion.IsProductLed() {
		v *= productLedLTVFactor
	}
	return Round(v, 1)
}

// RetentionLTVToCAC is the retention-based LTV/CAC used for scenarios:
// margin × r / (1 − r) with r = NRR/100. ok is false when r is exactly 1.
func RetentionLTVToCAC(netRetention, grossMargin float64) (float64, bool) {
	r := netRetention / 100
	if r == 1 {
		return 0, false
	}
	return Round(grossMargin/100*r/(1-r), 1), true
}
