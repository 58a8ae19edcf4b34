package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/paylens/paylens/internal/cmd/output"
)

var benchmarkEdits []string

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Show market benchmark values per grade",
	Long: `Benchmarks prints the market benchmark value for each configured
grade. Values can be overridden per grade with repeated --set flags,
for example --set 5=9000 --set 6=11500.`,
	Args: cobra.NoArgs,
	RunE: runBenchmarks,
}

func init() {
	benchmarksCmd.Flags().StringArrayVar(&benchmarkEdits, "set", nil, "override a benchmark value as grade=value")
	rootCmd.AddCommand(benchmarksCmd)
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	sess, err := newSession("")
	if err != nil {
		return err
	}

	edits, err := parseBenchmarkEdits(benchmarkEdits)
	if err != nil {
		return err
	}
	if len(edits) > 0 {
		sess.UpdateBenchmarks(edits)
	}

	var grades []int
	for _, b := range sess.Bands() {
		grades = append(grades, b.Grade)
	}
	aligned := sess.AlignedBenchmarks()

	data := output.Data{
		Headers:         []string{"Grade", "Market"},
		ColumnAlignment: []output.Align{output.AlignDefault, output.AlignRight},
	}
	for i, g := range grades {
		var market float64
		if i < len(aligned) {
			market = aligned[i]
		}
		data.Rows = append(data.Rows, []string{strconv.Itoa(g), output.Amount(market)})
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	return f.Format(os.Stdout, data)
}
