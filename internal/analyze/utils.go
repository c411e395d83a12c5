package analyze

import (
	"fmt"
	"os"
	"path/filepath"
)

// listChunkFiles returns the regular files directly inside dir, in directory
// order. Subdirectories are ignored; chunk corpora are flat.
func listChunkFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list chunk directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("chunk directory %s contains no files", dir)
	}
	return files, nil
}
