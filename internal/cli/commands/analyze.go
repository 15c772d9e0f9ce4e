package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/analyzer"
	"github.com/ccollicutt/flightcheck/pkg/config"
	"github.com/ccollicutt/flightcheck/pkg/output"
	"github.com/ccollicutt/flightcheck/pkg/source"
	"github.com/ccollicutt/flightcheck/pkg/webhook"
)

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Output    string
	Export    bool
	MaxErrors int
	Quiet     bool
	Strict    bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file|glob...]",
		Short: "Validate every line of record files",
		Long: `Validate every line of one or more record files and report which are valid.

Blank lines count as invalid. With --export the valid records of each file are
written next to it as CSV (data.txt -> data.valid.csv) with the header
time,flight,computer.

Defaults to the configured default input (data.txt).

Exit codes:
  0 - All lines valid
  1 - Invalid lines found
  2 - A file could not be read, or a configuration error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Export, "export", "e", false, "Export valid records to CSV next to each input")
	cmd.Flags().IntVar(&opts.MaxErrors, "max-errors", 0, "Invalid lines listed in text output (default from config, 10)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject lines with more than three pieces")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_issues", "When to fire webhook (on_issues|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := commandContext(cmd.Context())
	env, err := envFrom(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if len(args) == 0 {
		args = []string{env.Config.DefaultInput}
	}
	paths, err := source.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	maxErrors := opts.MaxErrors
	if maxErrors <= 0 {
		maxErrors = env.Config.MaxErrorsShown
	}
	formatter, err := output.NewFormatter(opts.Output, output.FormatOptions{
		Quiet:     opts.Quiet,
		MaxErrors: maxErrors,
		Color:     env.Color,
	})
	if err != nil {
		return err
	}

	hooks, err := collectWebhooks(env.Config, opts)
	if err != nil {
		return err
	}
	client := webhook.NewClient()

	out := cmd.OutOrStdout()
	unreadable := 0
	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(out)
		}

		report, err := analyzePath(ctx, env, path, opts.Strict)
		if err != nil {
			if !errors.Is(err, analyzer.ErrFileAccess) {
				return err
			}
			reportAccessError(cmd.ErrOrStderr(), env, path, err)
			unreadable++
			continue
		}

		if opts.Export && len(report.ValidRecords) > 0 {
			if _, err := exportReport(env, path, report); err != nil {
				return err
			}
		}

		if err := formatter.Format(ctx, report, out); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}

		logAnalysis(ctx, report)
		client.Notify(ctx, hooks, report)

		if report.HasIssues() {
			ExitCode = ExitInvalid
		}
	}

	if unreadable > 0 {
		return fmt.Errorf("%d of %d input(s) could not be read", unreadable, len(paths))
	}
	return nil
}

// analyzePath validates one file. File access failures are returned before
// any parsing and wrap analyzer.ErrFileAccess.
func analyzePath(ctx context.Context, env *Env, path string, strict bool) (*output.Report, error) {
	started := time.Now()

	opts := []analyzer.AnalyzerOption{analyzer.WithParser(env.Parser())}
	if strict {
		opts = append(opts, analyzer.WithStrict(true))
	}

	result, err := analyzer.NewAnalyzer(opts...).AnalyzeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return output.NewReport(result, started), nil
}

// exportReport writes the valid records of report next to input and records
// the export path in the report.
func exportReport(env *Env, input string, report *output.Report) (string, error) {
	exportPath := output.ExportPath(input, env.Config.ExportSuffix)
	if err := output.ExportFile(exportPath, report.ValidRecords); err != nil {
		return "", err
	}
	report.Metadata.ExportPath = exportPath
	return exportPath, nil
}

func reportAccessError(w io.Writer, env *Env, path string, err error) {
	msg := fmt.Sprintf("Cannot open file: %s", path)
	if errors.Is(err, os.ErrNotExist) {
		msg = fmt.Sprintf("File not found: %s", path)
	}
	fmt.Fprintln(w, env.Painter().Red(msg))
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) ([]config.WebhookConfig, error) {
	hooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	hooks = append(hooks, cfg.Webhooks...)

	if opts.WebhookURL == "" {
		return hooks, nil
	}

	candidate := config.DefaultConfig()
	candidate.Webhooks = []config.WebhookConfig{{
		Name:    "cli",
		URL:     opts.WebhookURL,
		Token:   opts.WebhookToken,
		Trigger: config.WebhookTrigger(opts.WebhookTrigger),
	}}
	if err := config.Validate(candidate); err != nil {
		return nil, fmt.Errorf("--webhook-url: %w", err)
	}
	return append(hooks, candidate.Webhooks[0]), nil
}

func logAnalysis(ctx context.Context, report *output.Report) {
	ctxlog.FromContext(ctx).Info("file analyzed",
		"source", report.Metadata.Source,
		"ok", report.Summary.OK,
		"invalid", report.Summary.Invalid,
		"report", report.ID)
}
