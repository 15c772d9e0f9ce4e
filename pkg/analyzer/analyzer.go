package analyzer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ccollicutt/flightcheck/internal/ctxlog"
	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/source"
)

// Analyzer validates every line of a source.
type Analyzer struct {
	parser record.Parser
}

// AnalyzerOption configures analyzer behavior.
type AnalyzerOption func(*Analyzer)

// WithParser sets the parser used for each line.
func WithParser(p record.Parser) AnalyzerOption {
	return func(a *Analyzer) {
		a.parser = p
	}
}

// WithStrict rejects lines with extra pieces.
func WithStrict(strict bool) AnalyzerOption {
	return func(a *Analyzer) {
		a.parser.Strict = strict
	}
}

// NewAnalyzer creates an analyzer.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze reads src to the end and tallies every line.
func (a *Analyzer) Analyze(ctx context.Context, src source.LineSource) (*Report, error) {
	log := ctxlog.FromContext(ctx)
	report := &Report{
		Source:       src.Name(),
		Errors:       []LineError{},
		ValidRecords: []record.Record{},
	}

	for {
		line, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			return nil, &FileAccessError{Path: src.Name(), Err: err}
		}

		out := a.parser.Check(line.Content)
		if !out.Valid() {
			log.Debug("line rejected", "source", line.Source, "line", line.LineNum, "reason", out.Err.Reason)
		}
		report.add(line.LineNum, line.Content, out)
	}

	log.Info("analysis complete",
		"source", report.Source,
		"lines", report.TotalLines,
		"ok", report.OKCount,
		"invalid", report.BadCount)

	return report, nil
}

// AnalyzeFile opens path and analyzes it. Open failures are returned as
// *FileAccessError before any line is parsed.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Report, error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer src.Close()

	report, err := a.Analyze(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}
	return report, nil
}

// AnalyzeLines analyzes in-memory lines with the default parser.
func AnalyzeLines(lines []string) *Report {
	// A slice source never fails and the background context is never done.
	report, _ := NewAnalyzer().Analyze(context.Background(), source.NewSliceSource("", lines))
	return report
}
