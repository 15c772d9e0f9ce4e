package output

import (
	"context"
	"fmt"
	"io"

	"github.com/gookit/color"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(_ context.Context, report *Report, w io.Writer) error {
	p := NewPainter(f.opts.Color)

	if f.opts.Quiet {
		_, err := fmt.Fprintf(w, "%s: %d OK, %d invalid\n",
			report.Metadata.Source, report.Summary.OK, report.Summary.Invalid)
		return err
	}

	fmt.Fprintf(w, "Analyzing file: %s\n", report.Metadata.Source)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintln(w, p.Green(fmt.Sprintf("  OK: %d", report.Summary.OK)))
	if report.HasIssues() {
		fmt.Fprintln(w, p.Red(fmt.Sprintf("  Invalid: %d", report.Summary.Invalid)))
	}

	if report.HasIssues() {
		limit := f.opts.maxErrors()
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Detailed errors (first %d):\n", limit)
		for _, e := range report.FirstErrors(limit) {
			fmt.Fprintf(w, "  Line %d: %s -- \"%s\"\n", e.Line, e.Reason, e.Raw)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Yellow("Tip: run 'flightcheck guide' to practice building a correct line."))
	}

	if report.Metadata.ExportPath != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Wrote %d records to %s\n", len(report.ValidRecords), report.Metadata.ExportPath)
	}

	return nil
}

// Painter applies terminal colors when enabled.
type Painter struct {
	enabled bool
}

// NewPainter creates a painter; a disabled painter returns text unchanged.
func NewPainter(enabled bool) Painter {
	return Painter{enabled: enabled}
}

func (p Painter) paint(c color.Color, s string) string {
	if !p.enabled {
		return s
	}
	return c.Sprint(s)
}

// Red marks failures.
func (p Painter) Red(s string) string { return p.paint(color.FgLightRed, s) }

// Green marks success.
func (p Painter) Green(s string) string { return p.paint(color.FgLightGreen, s) }

// Yellow marks hints and warnings.
func (p Painter) Yellow(s string) string { return p.paint(color.FgLightYellow, s) }

// Cyan marks headers.
func (p Painter) Cyan(s string) string { return p.paint(color.FgLightCyan, s) }
