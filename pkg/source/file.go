package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// FileSource implements LineSource for a single file.
type FileSource struct {
	path    string
	file    *os.File
	reader  *bufio.Reader
	lineNum int
}

// OpenFile opens path for reading. A missing or unreadable file is reported
// here, before any line is read.
func OpenFile(path string) (*FileSource, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &FileSource{
		path:   path,
		file:   f,
		reader: bufio.NewReader(f),
	}, nil
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Next returns the next line of the file, including blank ones. Lines have
// no length limit.
func (s *FileSource) Next(ctx context.Context) (*Line, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if s.reader == nil {
		return nil, io.EOF
	}

	content, err := readLine(s.reader)
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.lineNum++
	return &Line{
		Content: content,
		Source:  s.path,
		LineNum: s.lineNum,
	}, nil
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.reader = nil
	return err
}

// readLine returns the next line without its '\n'. A '\r' before the newline
// is kept so the line stays as written. A final line without a newline is
// still returned; io.EOF is only reported once nothing is left.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
