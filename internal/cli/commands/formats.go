package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/source"
)

// unrecognized counts lines whose first piece matches no time shape.
const unrecognized = "unrecognized"

// FormatTally counts how often each time shape starts a line.
type FormatTally struct {
	Source string
	Lines  int
	Counts map[string]int
}

// NewFormatsCommand creates the formats command.
func NewFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats [file...]",
		Short: "Show which time shapes a file uses",
		Long: `List the accepted time shapes and count how often each one starts a line.

This only looks at the first piece of each line; it does not range check the
time or validate the rest of the record. Use analyze for that.

Defaults to the configured default input (data.txt).`,
		RunE: runFormats,
	}
}

func runFormats(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd.Context())
	env, err := envFrom(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Accepted time shapes:")
	for _, f := range record.TimeFormats() {
		fmt.Fprintf(out, "  %-8s %s\n", f.Name, f.Example)
	}

	if len(args) == 0 {
		args = []string{env.Config.DefaultInput}
	}
	paths, err := source.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	for _, path := range paths {
		tally, err := tallyFile(cmd, path)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		printTally(out, tally)
	}
	return nil
}

func tallyFile(cmd *cobra.Command, path string) (*FormatTally, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = src.Close() }()

	tally := &FormatTally{Source: path, Counts: make(map[string]int)}
	ctx := commandContext(cmd.Context())
	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return tally, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		tally.Lines++

		tokens := record.Tokens(line.Content)
		if len(tokens) == 0 {
			tally.Counts[unrecognized]++
			continue
		}
		if f := record.DetectTimeFormat(tokens[0]); f != nil {
			tally.Counts[f.Name]++
		} else {
			tally.Counts[unrecognized]++
		}
	}
}

func printTally(w io.Writer, t *FormatTally) {
	fmt.Fprintf(w, "%s (%d lines):\n", t.Source, t.Lines)
	for _, f := range record.TimeFormats() {
		fmt.Fprintf(w, "  %-13s %d\n", f.Name, t.Counts[f.Name])
	}
	fmt.Fprintf(w, "  %-13s %d\n", unrecognized, t.Counts[unrecognized])
}
