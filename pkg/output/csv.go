package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccollicutt/flightcheck/pkg/record"
)

// DefaultExportSuffix replaces the input extension for CSV exports.
const DefaultExportSuffix = ".valid.csv"

// CSVHeader is the first row of every export.
var CSVHeader = []string{"time", "flight", "computer"}

// WriteCSV writes the header and one row per record, in the given order.
func WriteCSV(w io.Writer, records []record.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportPath returns the sibling export path for input: the same path with
// its extension replaced by suffix.
func ExportPath(input, suffix string) string {
	if suffix == "" {
		suffix = DefaultExportSuffix
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}

// ExportFile writes records as CSV to path, replacing any existing file.
func ExportFile(path string, records []record.Record) (err error) {
	f, err := os.Create(path) // #nosec G304 -- derived from a user-provided input path
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing export file: %w", cerr)
		}
	}()

	if err := WriteCSV(f, records); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}
