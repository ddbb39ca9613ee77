package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"smol_dev/internal/types"
	"smol_dev/internal/utils"
)

// WalkDirectory reads the immediate entries of directory into a snapshot.
// Entries ending in one of skip are ignored. An entry that cannot be read is
// recorded with an error placeholder instead of failing the whole walk.
func WalkDirectory(directory string, skip []string) (types.Snapshot, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	snapshot := make(types.Snapshot, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if utils.HasSuffix(name, skip) {
			continue
		}

		fullPath := filepath.Join(directory, name)
		relativePath, err := filepath.Rel(directory, fullPath)
		if err != nil {
			relativePath = name
		}

		data, err := os.ReadFile(fullPath)
		if err != nil {
			snapshot[relativePath] = fmt.Sprintf("Error reading file %s: %v", name, err)
			continue
		}
		snapshot[relativePath] = string(data)
	}
	return snapshot, nil
}
