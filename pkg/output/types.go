// Package output renders analysis reports and exports valid records.
package output

import (
	"time"

	"github.com/google/uuid"

	"github.com/ccollicutt/flightcheck/pkg/analyzer"
	"github.com/ccollicutt/flightcheck/pkg/record"
)

// Report is an analysis result prepared for output.
type Report struct {
	// ID uniquely identifies this analysis run.
	ID string `json:"id"`

	// Summary provides the line tallies.
	Summary Summary `json:"summary"`

	// Errors lists every rejected line in input order.
	Errors []analyzer.LineError `json:"errors"`

	// ValidRecords lists every accepted record in input order.
	ValidRecords []record.Record `json:"valid_records"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	TotalLines int `json:"total_lines"`
	OK         int `json:"ok"`
	Invalid    int `json:"invalid"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Source is the analyzed input.
	Source string `json:"source"`

	// AnalyzedAt is when the analysis finished.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`

	// ExportPath is where valid records were written, if they were.
	ExportPath string `json:"export_path,omitempty"`
}

// NewReport wraps an analyzer report. started is when analysis began.
func NewReport(r *analyzer.Report, started time.Time) *Report {
	now := time.Now()
	return &Report{
		ID: uuid.NewString(),
		Summary: Summary{
			TotalLines: r.TotalLines,
			OK:         r.OKCount,
			Invalid:    r.BadCount,
		},
		Errors:       r.Errors,
		ValidRecords: r.ValidRecords,
		Metadata: Metadata{
			Source:     r.Source,
			AnalyzedAt: now,
			Duration:   now.Sub(started),
		},
	}
}

// HasIssues returns true if any line was invalid.
func (r *Report) HasIssues() bool {
	return r.Summary.Invalid > 0
}

// FirstErrors returns at most n errors from the start of the report.
// A non-positive n returns all of them.
func (r *Report) FirstErrors(n int) []analyzer.LineError {
	if n <= 0 || n >= len(r.Errors) {
		return r.Errors
	}
	return r.Errors[:n]
}
