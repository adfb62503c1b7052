// cmd/benchctl/cmd_bucket.go
package main

import (
	"fmt"
	"strconv"
	"strings"

	"saas-benchmarks/internal/benchmark"

	"github.com/spf13/cobra"
)

var bucketCmd = &cobra.Command{
	Use:     "bucket <arr>",
	Short:   "Classify an ARR value into its scale bucket",
	Example: "  benchctl bucket 18000000\n  benchctl bucket 18M\n  benchctl bucket '$750K'",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := parseARR(args[0])
		if err != nil {
			return err
		}
		b, _ := benchmark.Classify("", arr)
		fmt.Fprintln(cmd.OutOrStdout(), b)
		return nil
	},
}

// parseARR reads a dollar amount with an optional $ prefix and K, M or B
// suffix.
func parseARR(s string) (float64, error) {
	v := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "$")
	v = strings.ReplaceAll(v, ",", "")

	mult := 1.0
	switch {
	case strings.HasSuffix(v, "K"):
		mult, v = 1e3, strings.TrimSuffix(v, "K")
	case strings.HasSuffix(v, "M"):
		mult, v = 1e6, strings.TrimSuffix(v, "M")
	case strings.HasSuffix(v, "B"):
		mult, v = 1e9, strings.TrimSuffix(v, "B")
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ARR %q", s)
	}
	return f * mult, nil
}
