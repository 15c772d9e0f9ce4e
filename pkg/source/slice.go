package source

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// SliceSource serves lines from memory.
type SliceSource struct {
	name  string
	lines []string
	next  int
}

// NewSliceSource creates a source over lines.
func NewSliceSource(name string, lines []string) *SliceSource {
	return &SliceSource{name: name, lines: lines}
}

// NewReaderSource splits everything readable from r into lines.
// Line endings are handled the same way as for files.
func NewReaderSource(name string, r io.Reader) (*SliceSource, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := readLine(br)
		if err == io.EOF {
			return NewSliceSource(name, lines), nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}

// SplitLines splits text the way a file would be read: on '\n', keeping
// blank lines and any '\r', with no final empty line after a trailing
// newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Name returns the source name.
func (s *SliceSource) Name() string {
	return s.name
}

// Next returns the next line.
func (s *SliceSource) Next(ctx context.Context) (*Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.next >= len(s.lines) {
		return nil, io.EOF
	}
	s.next++
	return &Line{
		Content: s.lines[s.next-1],
		Source:  s.name,
		LineNum: s.next,
	}, nil
}

// Close is a no-op.
func (s *SliceSource) Close() error {
	return nil
}
