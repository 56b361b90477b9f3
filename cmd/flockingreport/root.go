package main

import (
	"errors"
	"fmt"
	"os"

	"flocking-report/internal/app"
	"flocking-report/internal/shared/configs"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagTemplate string
	flagVerbose  bool
)

// errReported marks errors a command already printed.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:           "flockingreport",
	Short:         "OSG flocking usage report",
	Long:          "Summarize payload core hours of flocked jobs by site, VO, probe and project, and mail the report.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "./configs/configs.yml", "Configuration file")
	rootCmd.PersistentFlags().StringVarP(&flagTemplate, "template", "T", "", "HTML template file, overrides report.template_file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every report record at debug level")
}

// newApp is the shared setup path for all commands.
func newApp() (*app.App, error) {
	cfg, err := configs.LoadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, app.Options{TemplateFile: flagTemplate, Verbose: flagVerbose})
}
