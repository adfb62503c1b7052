// internal/benchmark/series/funnel.go
package series

import "saas-benchmarks/internal/benchmark/store"

// FunnelStep is one bar of the ARR bridge, in percent of beginning ARR.
type FunnelStep struct {
	Name      string  `json:"name"`
	Benchmark float64 `json:"benchmark"`
	Company   float64 `json:"yourCompany"`
}

// ARRFunnel bridges beginning ARR (100) to ending ARR through new logo,
// expansion and churn.
func ARRFunnel(company, benchmark store.Funnel) []FunnelStep {
	return []FunnelStep{
		{Name: "Beginning ARR", Benchmark: 100, Company: 100},
		{Name: "+ New Logo", Benchmark: benchmark.NewLogo, Company: company.NewLogo},
		{Name: "+ Expansion", Benchmark: benchmark.Expansion, Company: company.Expansion},
		{Name: "- Churn", Benchmark: -benchmark.Churn, Company: -company.Churn},
		{Name: "= Ending ARR", Benchmark: endingARR(benchmark), Company: endingARR(company)},
	}
}

func endingARR(f store.Funnel) float64 {
	return 100 + f.NewLogo + f.Expansion - f.Churn
}
