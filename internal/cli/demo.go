package cli

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/quarry/internal/demo"
)

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [section...]",
		Short: "Run the query demo sections",
		Long: `Run the demo query sections against the dataset and print the report.

With no arguments every section runs in report order. Section names
(see 'quarry sections') select and order a subset.

Exit codes:
  0 - Report printed
  2 - Command error (unknown section, unreadable dataset, etc.)

Examples:
  quarry demo
  quarry demo sort-method elements
  quarry demo --data staff.yaml --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, args, cmd)
		},
	}
}

func runDemo(opts *RootOptions, sections []string, cmd *cobra.Command) error {
	ds, err := loadDataset(opts)
	if err != nil {
		return err
	}

	report, err := demo.Run(ds, opts.RunIDs, sections...)
	if err != nil {
		if errors.Is(err, demo.ErrUnknownSection) {
			return WrapExitError(ExitCommandError, "invalid section", err)
		}
		return WrapExitError(ExitFailure, "demo failed", err)
	}
	slog.Info("report generated", "run_id", report.RunID, "sections", len(report.Blocks))

	w := cmd.OutOrStdout()
	if opts.Config.Format == "json" {
		return report.WriteJSON(w)
	}
	return report.WriteText(w)
}
