// Package cmd implements the paylens CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paylens/paylens/cmd/paylens/app"
	"github.com/paylens/paylens/pkg/logging"
)

var (
	cfg *app.Config

	// Global flags
	flagVerbose  bool
	flagQuiet    bool
	flagNoColor  bool
	flagOutput   string
	flagLogLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "paylens",
	Short: "Reconcile employee compensation against grade salary bands",
	Long: `Paylens ingests a spreadsheet of employee compensation records,
reconciles each record against a configurable table of job-grade salary
bands, flags records whose pay falls outside their grade's band, and
prepares the result for charting against market benchmarks.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = app.LoadConfig()
		if err != nil {
			return err
		}
		cfg.UpdateFromFlags(flagVerbose, flagQuiet, flagNoColor, flagOutput)
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		logging.SetDefault(app.NewLogger(cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: table, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
}

// Execute runs the root command.
func Execute(version, commit string) error {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, commit)
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
