package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/quarry/internal/config"
	"github.com/roach88/quarry/internal/demo"
	"github.com/roach88/quarry/internal/roster"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Data       string
	ConfigFile string
	LogLevel   string

	// Config is resolved from flags, environment and config file before
	// any subcommand runs.
	Config config.Config

	// RunIDs overrides the report id generator (for testing).
	// If nil, reports use UUIDv7.
	RunIDs demo.RunIDGenerator
}

// NewRootCommand creates the root command for the quarry CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quarry",
		Short: "quarry - declarative queries over employee records",
		Long: `Run sorting, grouping, quantifier, filter and element-access queries
over an employee/department dataset and print the results.

The dataset is the built-in sample unless --data names a YAML or CUE file.
Settings can also come from QUARRY_* environment variables or a YAML
config file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			opts.Config = cfg
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.LogLevel))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, config.KeyVerbose, "v", false, "verbose output (debug logging)")
	cmd.PersistentFlags().StringVar(&opts.Format, config.KeyFormat, "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Data, config.KeyData, "d", "", "dataset file (.yaml, .yml or .cue); empty uses the built-in sample")
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, config.KeyConfig, "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, config.KeyLogLevel, "info", "log level (debug|info|warn|error)")

	// Add subcommands
	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewSectionsCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// newLogger returns a text logger writing to w at level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// loadDataset returns the configured dataset.
func loadDataset(opts *RootOptions) (*roster.Dataset, error) {
	if opts.Config.Data == "" {
		slog.Debug("using built-in sample dataset")
		return roster.Sample(), nil
	}

	slog.Info("loading dataset", "path", opts.Config.Data)
	ds, err := roster.LoadFile(opts.Config.Data)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load dataset", err)
	}
	slog.Info("dataset loaded", "employees", len(ds.Employees), "departments", len(ds.Departments))
	return ds, nil
}
