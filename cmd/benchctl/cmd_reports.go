// cmd/benchctl/cmd_reports.go
package main

import (
	"encoding/json"
	"fmt"

	"saas-benchmarks/internal/benchmark"
	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/common/database"

	"github.com/spf13/cobra"
)

var (
	reportsURL   string
	reportsIndex string
	reportsSize  int
)

var reportsCmd = &cobra.Command{
	Use:   "reports <bucket|arr>",
	Short: "List recently published reports for an ARR bucket",
	Long: `reports searches the report index written by publish-benchmark-report.
The argument is a bucket label such as '$10M-$25M' or an ARR amount, which
is classified first.`,
	Example: "  benchctl reports '$10M-$25M' --es-url http://localhost:9200\n  benchctl reports 18M --size 5",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBucket(args[0])
		if err != nil {
			return err
		}

		es, err := database.NewElasticsearch(config.ElasticsearchConfig{URL: reportsURL})
		if err != nil {
			return err
		}
		hits, err := database.NewReportIndexer(es.Client, reportsIndex).
			SearchByBucket(cmd.Context(), b, reportsSize)
		if err != nil {
			return err
		}
		if hits == nil {
			hits = []json.RawMessage{}
		}
		return writeJSON(cmd.OutOrStdout(), hits)
	},
}

func init() {
	reportsCmd.Flags().StringVar(&reportsURL, "es-url", "http://localhost:9200", "Elasticsearch URL")
	reportsCmd.Flags().StringVar(&reportsIndex, "index", "benchmark-reports", "report index name")
	reportsCmd.Flags().IntVar(&reportsSize, "size", 10, "maximum number of reports")
}

// resolveBucket accepts a known bucket label or anything parseARR reads.
func resolveBucket(arg string) (string, error) {
	if b, known := benchmark.Classify(arg, 0); known {
		return string(b), nil
	}
	arr, err := parseARR(arg)
	if err != nil {
		return "", fmt.Errorf("%q is neither a bucket label nor an ARR amount", arg)
	}
	b, _ := benchmark.Classify("", arr)
	return string(b), nil
}
