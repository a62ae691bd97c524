// Package fs resolves and watches the local files the CLI publishes.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves glob patterns ("**" included) into a sorted, de-duplicated
// list of regular files. Every pattern must match at least one file.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		found := false
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			found = true
			clean := filepath.Clean(match)
			if !seen[clean] {
				seen[clean] = true
				files = append(files, clean)
			}
		}
		if !found {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadFile returns the content of a file to publish.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
