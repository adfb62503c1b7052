// cmd/benchctl/cmd_evaluate.go
package main

import (
	"fmt"
	"time"

	"saas-benchmarks/internal/benchmark"

	"github.com/spf13/cobra"
)

var (
	evaluateFile   string
	evaluateYear   int
	evaluateSeed   uint64
	evaluateSeries []string
	evaluateXAxis  string
	evaluateYAxis  string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a snapshot and print the full report as JSON",
	Args:  cobra.NoArgs,
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFile, "file", "f", "company.yaml", "snapshot YAML file")
	evaluateCmd.Flags().IntVar(&evaluateYear, "year", 0, "current year for funding metrics (default: this year)")
	evaluateCmd.Flags().Uint64Var(&evaluateSeed, "seed", 0, "seed for peer generation")
	evaluateCmd.Flags().StringSliceVar(&evaluateSeries, "series", nil, "series to include (quarterly,cohort,valuation,scenarios,peers,funnel,rounds or all)")
	evaluateCmd.Flags().StringVar(&evaluateXAxis, "x-axis", "arrGrowth", "positioning map x axis")
	evaluateCmd.Flags().StringVar(&evaluateYAxis, "y-axis", "fcfMargin", "positioning map y axis")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	snap, err := loadSnapshot(evaluateFile)
	if err != nil {
		return err
	}

	kinds, err := parseSeries(evaluateSeries)
	if err != nil {
		return err
	}

	year := evaluateYear
	if year <= 0 {
		year = time.Now().Year()
	}

	report := benchmark.NewEngine().Evaluate(snap, benchmark.EvaluateOptions{
		CurrentYear: year,
		Seed:        evaluateSeed,
		Series:      kinds,
		XAxis:       evaluateXAxis,
		YAxis:       evaluateYAxis,
	})
	return writeJSON(cmd.OutOrStdout(), report)
}

func parseSeries(names []string) ([]benchmark.SeriesKind, error) {
	known := make(map[string]benchmark.SeriesKind)
	for _, k := range benchmark.AllSeries() {
		known[string(k)] = k
	}

	var out []benchmark.SeriesKind
	for _, n := range names {
		if n == "all" {
			return benchmark.AllSeries(), nil
		}
		k, ok := known[n]
		if !ok {
			return nil, fmt.Errorf("unknown series %q", n)
		}
		out = append(out, k)
	}
	return out, nil
}
