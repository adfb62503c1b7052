// cmd/benchctl/cmd_scenarios.go
package main

import (
	"fmt"

	"saas-benchmarks/internal/benchmark"

	"github.com/spf13/cobra"
)

var (
	scenariosFile string
	scenarioName  string
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Compare a snapshot against the predefined growth scenarios",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot(scenariosFile)
		if err != nil {
			return err
		}

		comparisons := benchmark.NewEngine().Scenarios(snap.Company, scenarioName)
		if comparisons == nil {
			return fmt.Errorf("unknown scenario %q", scenarioName)
		}
		return writeJSON(cmd.OutOrStdout(), comparisons)
	},
}

func init() {
	scenariosCmd.Flags().StringVarP(&scenariosFile, "file", "f", "company.yaml", "snapshot YAML file")
	scenariosCmd.Flags().StringVar(&scenarioName, "name", "", "compare a single scenario by name")
}
