package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paylens/paylens/internal/cmd/output"
	"github.com/paylens/paylens/pkg/logging"
)

var (
	checkBandsFile    string
	checkOutliersOnly bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Reconcile a spreadsheet against the grade salary bands",
	Long: `Check ingests an employee spreadsheet (.xlsx, .xls, or .csv),
classifies every record against its grade's salary band, and prints the
records with their in-band or outlier status.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkBandsFile, "bands", "", "YAML file of band overrides to apply before classifying")
	checkCmd.Flags().BoolVar(&checkOutliersOnly, "outliers", false, "only print records outside their band")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	sess, err := newSession(checkBandsFile)
	if err != nil {
		return err
	}
	if err := ingestFile(sess, args[0]); err != nil {
		return err
	}

	res := sess.Reclassify()
	logging.Info().
		Int("classified", res.Classified).
		Int("outliers", res.Outliers).
		Msg("classification complete")
	if len(res.UnknownGrades) > 0 {
		logging.Warn().
			Ints("grades", res.UnknownGrades).
			Msg("grades without a configured band")
	}

	set := sess.Records()
	var data output.Data
	if checkOutliersOnly {
		data = output.OutliersToTableData(set)
	} else {
		data = output.RecordsToTableData(set)
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	return f.Format(os.Stdout, data)
}
