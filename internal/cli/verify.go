package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/quarry/internal/config"
	"github.com/roach88/quarry/internal/crosscheck"
	"github.com/roach88/quarry/internal/store"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the query engine against SQLite",
		Long: `Load the dataset into SQLite and run each demo pipeline both through the
in-memory operators and as compiled SQL. Every check must return the same
ids in the same order.

Exit codes:
  0 - All checks matched
  1 - One or more checks mismatched
  2 - Command error (bad database, unreadable dataset, etc.)

Examples:
  quarry verify
  quarry verify --data staff.cue --format json
  quarry verify --database ./quarry.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, config.KeyDatabase, store.MemoryDSN, "SQLite DSN for the reference backend")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	ds, err := loadDataset(opts.RootOptions)
	if err != nil {
		return err
	}

	slog.Debug("opening database", "dsn", opts.Config.Database)
	st, err := store.Open(opts.Config.Database, store.WithLogger(slog.Default()))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	summary, err := crosscheck.Run(cmd.Context(), st, ds, crosscheck.DefaultChecks())
	if err != nil {
		return WrapExitError(ExitCommandError, "verification could not run", err)
	}
	slog.Info("verification finished", "passed", summary.Passed, "failed", summary.Failed)

	if opts.Config.Format == "json" {
		return outputVerifyJSON(cmd, summary)
	}
	return outputVerifyText(cmd, summary)
}

func outputVerifyJSON(cmd *cobra.Command, summary crosscheck.Summary) error {
	formatter := &OutputFormatter{Format: "json", Writer: cmd.OutOrStdout()}
	if summary.OK() {
		return formatter.Success(summary)
	}

	msg := fmt.Sprintf("%d check(s) failed", summary.Failed)
	if err := formatter.Error("E_MISMATCH", msg, summary); err != nil {
		return err
	}
	return NewExitError(ExitFailure, msg)
}

func outputVerifyText(cmd *cobra.Command, summary crosscheck.Summary) error {
	w := cmd.OutOrStdout()

	for _, r := range summary.Results {
		if r.Match {
			fmt.Fprintf(w, "✓ %s (%d rows)\n", r.Name, len(r.Engine))
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", r.Name)
		fmt.Fprintf(w, "  engine:  %v\n", r.Engine)
		fmt.Fprintf(w, "  backend: %v\n", r.Backend)
		fmt.Fprintf(w, "  sql:     %s\n", r.SQL)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Verify Summary: %d passed, %d failed, %d total\n", summary.Passed, summary.Failed, len(summary.Results))

	if !summary.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d check(s) failed", summary.Failed))
	}

	fmt.Fprintln(w, "✓ All checks matched")
	return nil
}
