package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paylens/paylens/internal/cmd/output"
)

var bandsFile string

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Show the grade salary band table",
	Long: `Bands prints the configured salary band table, one row per grade,
alongside the market benchmark value aligned to each grade.`,
	Args: cobra.NoArgs,
	RunE: runBands,
}

func init() {
	bandsCmd.Flags().StringVar(&bandsFile, "bands", "", "YAML file of band overrides to apply")
	rootCmd.AddCommand(bandsCmd)
}

func runBands(cmd *cobra.Command, args []string) error {
	sess, err := newSession(bandsFile)
	if err != nil {
		return err
	}

	data := output.BandsToTableData(sess.Bands(), sess.AlignedBenchmarks())
	f, err := formatter()
	if err != nil {
		return err
	}
	return f.Format(os.Stdout, data)
}
