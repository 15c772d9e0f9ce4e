// Package cli provides the command-line interface for flightcheck.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/internal/cli/commands"
	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/config"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	NoColor    bool
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return commands.ExitError
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "flightcheck",
		Short: "Check flight records of the form <time> <flight> <computer>",
		Long: `flightcheck validates flight check records.

A record is one line with three pieces separated by spaces or commas:

  09:25:30 ABC123 XYZ
  092530,ABC123,XY1

  Time      HH:MM:SS or HHMMSS, 24-hour clock
  Flight    a letter, then up to 9 more letters or digits
  Computer  3 letters or digits; I and O are not allowed in the last two spots

Check single lines, build one step by step, validate whole files and export
the valid records to CSV, or serve the checker over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to YAML config file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.StringVar(&opts.LogFormat, "log-format", "", "Log format (text|json)")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewGuideCommand())
	rootCmd.AddCommand(commands.NewStoredCommand())
	rootCmd.AddCommand(commands.NewViewCommand())
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewFormatsCommand())
	rootCmd.AddCommand(commands.NewRulesCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMenuCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// setup loads the configuration and installs the logger and command
// environment in the command context.
func setup(cmd *cobra.Command, opts *GlobalOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// validate reports config errors itself.
	path := opts.ConfigPath
	if cmd.Name() == "validate" {
		path = ""
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger := ctxlog.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	logger.Debug("config loaded", "path", path, "store", cfg.StorePath)

	ctx = ctxlog.WithLogger(ctx, logger)
	ctx = commands.WithEnv(ctx, &commands.Env{
		Config: cfg,
		Color:  commands.ColorEnabled(cmd.OutOrStdout(), opts.NoColor),
	})
	cmd.SetContext(ctx)
	return nil
}
