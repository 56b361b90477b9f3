package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"flocking-report/internal/models"
	"flocking-report/internal/reporters"

	"github.com/spf13/cobra"
)

var (
	flagStart  string
	flagEnd    string
	flagProbes string
	flagDryRun bool
	flagTest   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate the report for a time range and mail it",
	Example: `  flockingreport run --start 2025-01-01 --end 2025-02-01
  flockingreport run -s "2025-01-01 00:00" -e "2025-01-08 00:00" --test
  flockingreport run -s 2025-01-01 -e 2025-02-01 --dryrun`,
	RunE: runReport,
}

func init() {
	runCmd.Flags().StringVarP(&flagStart, "start", "s", "", "Start of the report range (inclusive)")
	runCmd.Flags().StringVarP(&flagEnd, "end", "e", "", "End of the report range (exclusive)")
	runCmd.Flags().StringVar(&flagProbes, "probes", "", "Comma-delimited probe list, overrides report.probe_list")
	runCmd.Flags().BoolVarP(&flagDryRun, "dryrun", "d", false, "Print the report instead of mailing it")
	runCmd.Flags().BoolVar(&flagTest, "test", false, "Mail the test recipients instead of the report list")
	_ = runCmd.MarkFlagRequired("start")
	_ = runCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(runCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	opts := reporters.SendOptions{Test: flagTest, DryRun: flagDryRun}
	if cmd.Flags().Changed("probes") {
		opts.Probes = models.ParseProbeList(flagProbes)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := application.RunRange(ctx, flagStart, flagEnd, opts)
	if result != nil && result.Text != "" && (flagDryRun || flagVerbose) {
		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error running OSG Flocking Report: %v\n", err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "OSG Flocking Report execution successful")
	return nil
}
