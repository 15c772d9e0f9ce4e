package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
)

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	Save   bool
	Strict bool
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check [record...]",
		Short: "Check a single record line",
		Long: `Check one record line of the form "<time> <flight> <computer>".

Arguments are joined with spaces, so both of these work:
  flightcheck check 09:25:30 ABC123 XYZ
  flightcheck check "092530,ABC123,XY1"

Without arguments the line is read from standard input.

Exit codes:
  0 - Record is valid
  1 - Record is invalid`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Save, "save", "s", false, "Append the record to the store when valid")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Reject lines with more than three pieces")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	ctx := commandContext(cmd.Context())
	env, err := envFrom(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	out := cmd.OutOrStdout()
	paint := env.Painter()

	line := strings.Join(args, " ")
	if len(args) == 0 {
		fmt.Fprint(out, "Record > ")
		text, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading record: %w", err)
		}
		line = strings.TrimRight(text, "\r\n")
	}

	parser := env.Parser()
	if opts.Strict {
		parser.Strict = true
	}

	result := parser.Check(line)
	if !result.Valid() {
		fmt.Fprintln(out, paint.Red("Invalid: "+result.Err.Reason))
		fmt.Fprintln(out)
		printRules(out, env.Config.StorePath)
		ExitCode = ExitInvalid
		return nil
	}

	fmt.Fprintln(out, paint.Green("Valid record:"))
	printRecord(out, result.Record)

	if opts.Save {
		if err := saveRecord(out, env, result.Record, nil); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Info("record saved", "store", env.Config.StorePath, "record", result.Record.String())
	}
	return nil
}
