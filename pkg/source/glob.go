package source

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandPaths resolves file arguments that may contain glob patterns.
// Matches of one pattern are sorted; patterns keep the order they were given
// in and duplicates are dropped. A pattern matching nothing is kept as a
// literal path so opening it reports the missing file.
func ExpandPaths(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		paths = append(paths, p)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			add(pattern)
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			add(m)
		}
	}

	return paths, nil
}
