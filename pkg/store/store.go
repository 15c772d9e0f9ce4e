// Package store persists accepted records in an append-only text file.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/source"
)

// DefaultPath is the store file used when none is configured.
const DefaultPath = "latestValues.txt"

// ErrNoEntries is returned when the store file does not exist yet.
var ErrNoEntries = errors.New("no saved entries yet")

// Entry is one stored line.
type Entry struct {
	// Num is the 1-based line number.
	Num int `json:"num"`

	// Line is the stored text.
	Line string `json:"line"`
}

// Store appends records to a file, one canonical line each.
type Store struct {
	path string
}

// New creates a store backed by path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append writes rec as "HH:MM:SS FLIGHT COMPUTER\n" to the end of the file,
// creating it if needed.
func (s *Store) Append(rec record.Record) (err error) {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G304 -- configured path
	if err != nil {
		return fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", s.path, cerr)
		}
	}()

	if _, err := io.WriteString(f, rec.String()+"\n"); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

// Entries reads every stored line. It returns ErrNoEntries when the file
// does not exist and an empty slice when it exists but is empty.
func (s *Store) Entries() ([]Entry, error) {
	lines, _, err := readLines(s.path, 0)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoEntries
	}
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(lines))
	for i, l := range lines {
		entries = append(entries, Entry{Num: i + 1, Line: l})
	}
	return entries, nil
}

// Head reads at most n lines of any text file and reports whether more remain.
func Head(path string, n int) (lines []string, truncated bool, err error) {
	return readLines(path, n)
}

// readLines reads up to limit lines of path; limit <= 0 reads them all.
func readLines(path string, limit int) (lines []string, truncated bool, err error) {
	src, err := source.OpenFile(path)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = src.Close() }()

	ctx := context.Background()
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			return lines, false, nil
		}
		if err != nil {
			return lines, false, err
		}
		if limit > 0 && len(lines) == limit {
			return lines, true, nil
		}
		lines = append(lines, line.Content)
	}
}
