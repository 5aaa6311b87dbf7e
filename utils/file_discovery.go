package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var videoExtensions = []string{".mp4", ".mkv", ".avi"}

// IsVideoFile matches the supported video extensions, ignoring case.
func IsVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, candidate := range videoExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

func IsTranscriptFile(name string) bool {
	return strings.HasSuffix(name, ".txt")
}

// ListFiles returns the names of the regular files in dir accepted by match,
// in the order os.ReadDir lists them.
func ListFiles(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read directory '%s': %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMatchingFiles, dir)
	}
	return files, nil
}
