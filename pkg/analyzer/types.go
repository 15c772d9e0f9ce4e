// Package analyzer runs record validation over batches of lines.
package analyzer

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/flightcheck/pkg/record"
)

// ErrFileAccess marks failures to open or read an input file.
var ErrFileAccess = errors.New("file access failed")

// FileAccessError reports an input that could not be opened or read.
// It is distinct from an input that was read but held no valid records.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *FileAccessError) Unwrap() []error {
	return []error{ErrFileAccess, e.Err}
}

// LineError describes one rejected line.
type LineError struct {
	// Line is the 1-based line number.
	Line int `json:"line"`

	// Kind classifies the rejection.
	Kind record.Kind `json:"kind"`

	// Reason is the human-readable rejection reason.
	Reason string `json:"reason"`

	// Raw is the line exactly as read.
	Raw string `json:"raw"`
}

// Report is the outcome of analyzing one source.
type Report struct {
	// Source names the analyzed input.
	Source string `json:"source"`

	// TotalLines counts every line read, blank ones included.
	TotalLines int `json:"total_lines"`

	// OKCount is the number of valid lines.
	OKCount int `json:"ok_count"`

	// BadCount is the number of invalid lines.
	BadCount int `json:"bad_count"`

	// Errors holds every rejected line in input order.
	Errors []LineError `json:"errors"`

	// ValidRecords holds every accepted record in input order.
	ValidRecords []record.Record `json:"valid_records"`
}

func (r *Report) add(lineNum int, raw string, out record.Outcome) {
	r.TotalLines++
	if out.Valid() {
		r.OKCount++
		r.ValidRecords = append(r.ValidRecords, out.Record)
		return
	}
	r.BadCount++
	r.Errors = append(r.Errors, LineError{
		Line:   lineNum,
		Kind:   out.Err.Kind,
		Reason: out.Err.Reason,
		Raw:    raw,
	})
}
