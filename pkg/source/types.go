// Package source provides line-by-line readers for record input.
package source

import "context"

// Line is one raw input line.
type Line struct {
	// Content is the line text without its trailing newline.
	Content string

	// Source names where the line came from (usually a file path).
	Source string

	// LineNum is the 1-based line number within Source.
	LineNum int
}

// LineSource provides an iterator over raw input lines.
// Implementations are not safe for concurrent use.
type LineSource interface {
	// Name identifies the source for reports.
	Name() string

	// Next returns the next line, or io.EOF when no more lines are available.
	Next(ctx context.Context) (*Line, error)

	// Close releases any resources held by the source.
	Close() error
}
