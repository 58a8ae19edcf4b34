package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/paylens/paylens/internal/report"
	"github.com/paylens/paylens/pkg/errors"
	"github.com/paylens/paylens/pkg/logging"
)

var (
	reportFile      string
	reportTitle     string
	reportCurrency  string
	reportBandsFile string
	reportEdits     []string
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Render a markdown reconciliation report",
	Long: `Report ingests an employee spreadsheet, classifies every record
against the salary bands, and renders a markdown report with the band
table, market benchmarks, and per-grade outlier breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "write the report to a file instead of stdout")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title")
	reportCmd.Flags().StringVar(&reportCurrency, "currency", "", "currency label for amounts")
	reportCmd.Flags().StringVar(&reportBandsFile, "bands", "", "YAML file of band overrides to apply before classifying")
	reportCmd.Flags().StringArrayVar(&reportEdits, "set", nil, "override a benchmark value as grade=value")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	sess, err := newSession(reportBandsFile)
	if err != nil {
		return err
	}

	edits, err := parseBenchmarkEdits(reportEdits)
	if err != nil {
		return err
	}
	if len(edits) > 0 {
		sess.UpdateBenchmarks(edits)
	}

	if err := ingestFile(sess, args[0]); err != nil {
		return err
	}
	res := sess.Reclassify()
	logging.Info().
		Int("classified", res.Classified).
		Int("outliers", res.Outliers).
		Msg("classification complete")

	opts := report.Options{Title: reportTitle}
	opts.Currency = reportCurrency
	if opts.Currency == "" && cfg != nil {
		opts.Currency = cfg.Currency
	}
	if opts.Title == "" && cfg != nil {
		opts.Title = cfg.ReportTitle
	}

	w := os.Stdout
	if reportFile != "" {
		f, err := os.Create(reportFile)
		if err != nil {
			return errors.WrapIO("create", reportFile, err)
		}
		defer f.Close()
		w = f
	}
	if err := report.Write(w, sess.Chart(), opts); err != nil {
		return err
	}
	if reportFile != "" {
		logging.Info().Str("file", reportFile).Msg("report written")
	}
	return nil
}
