// cmd/benchctl/main.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "benchctl",
	Short: "Run the SaaS benchmark engine from the command line",
	Long: `benchctl evaluates a company snapshot against the built-in SaaS
benchmark tables without a running Zeebe cluster. Snapshots are YAML files
with a company section and an optional funding section.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(evaluateCmd, bucketCmd, scenariosCmd, reportsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
