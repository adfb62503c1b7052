// internal/benchmark/store/profiles.go
package store

import (
	"saas-benchmarks/internal/benchmark/bucket"
	"saas-benchmarks/internal/models"
)

// Split is a percentage breakdown across sales & marketing, R&D and G&A.
type Split struct {
	SalesMarketing float64 `json:"salesMarketing"`
	RD             float64 `json:"rd"`
	GA             float64 `json:"ga"`
}

// Funnel is the typical composition of new ARR plus the churn rate, all as
// percentages of beginning ARR.
type Funnel struct {
	NewLogo   float64 `json:"newLogo"`
	Expansion float64 `json:"expansion"`
	Churn     float64 `json:"churn"`
}

// RuleOf40Point is one quartile's growth and FCF margin.
type RuleOf40Point struct {
	Growth    float64 `json:"growth"`
	FCFMargin float64 `json:"fcfMargin"`
}

func (p RuleOf40Point) Score() float64 {
	return p.Growth + p.FCFMargin
}

type RuleOf40Profile struct {
	Top    RuleOf40Point `json:"topQuartile"`
	Median RuleOf40Point `json:"median"`
	Bottom RuleOf40Point `json:"bottomQuartile"`
}

// MagicNumbers holds gross and net magic number benchmarks.
type MagicNumbers struct {
	Gross float64 `json:"gross"`
	Net   float64 `json:"net"`
}

// Industry is one vertical of the industry benchmark set.
type Industry struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SpendProfile returns the median OpEx split for b.
func (s *Store) SpendProfile(b bucket.Bucket) Split {
	return s.spend[bucket.FromLabel(string(b))]
}

// HeadcountProfile returns the headcount split for b. Motions without a
// dedicated table use the sales-led one.
func (s *Store) HeadcountProfile(b bucket.Bucket, motion models.GrowthMotion) Split {
	rows, ok := s.headcount[motion]
	if !ok {
		rows = s.headcount[models.MotionSalesLed]
	}
	return rows[bucket.FromLabel(string(b))]
}

func (s *Store) FunnelProfile(b bucket.Bucket) Funnel {
	return s.funnel[bucket.FromLabel(string(b))]
}

func (s *Store) RuleOf40Profile(b bucket.Bucket) RuleOf40Profile {
	return s.ruleOf40[bucket.FromLabel(string(b))]
}

// MagicNumbers returns gross/net magic number benchmarks for the motion and
// bucket, falling back to the sales-led table.
func (s *Store) MagicNumbers(motion models.GrowthMotion, b bucket.Bucket) MagicNumbers {
	rows, ok := s.magic[motion]
	if !ok {
		rows = s.magic[models.MotionSalesLed]
	}
	return rows[bucket.FromLabel(string(b))]
}

// OpExSplit is the typical OpEx allocation for a motion.
func (s *Store) OpExSplit(motion models.GrowthMotion) Split {
	if split, ok := s.opex[motion]; ok {
		return split
	}
	return s.opex[models.MotionSalesLed]
}

// ValuationScaleMultiplier scales valuation multiples by company size.
func (s *Store) ValuationScaleMultiplier(b bucket.Bucket) float64 {
	if m, ok := s.valuationScale[b]; ok {
		return m
	}
	return 1.0
}

// Industries lists the verticals in display order.
func (s *Store) Industries() []Industry {
	out := make([]Industry, len(s.industries))
	copy(out, s.industries)
	return out
}

// ResolveIndustry returns the catalog entry for key, or "all" when unknown.
func (s *Store) ResolveIndustry(key string) (Industry, bool) {
	for _, ind := range s.industries {
		if ind.Key == key {
			return ind, true
		}
	}
	return s.industries[0], false
}
