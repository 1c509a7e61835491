package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WAVExtension is the only source extension the selector accepts
const WAVExtension = ".wav"

// IsWAV reports whether path has a .wav extension, ignoring case
func IsWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), WAVExtension)
}

// FilterWAV keeps the paths with a WAV extension, in their original order.
// Paths are made absolute and duplicates are dropped.
func FilterWAV(paths []string) []string {
	result := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))

	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" || !IsWAV(p) {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// ListWAVFiles returns the WAV files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ListWAVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsWAV(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return FilterWAV(paths), nil
}

// DirExists reports whether dir exists and is a directory
func DirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
