package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"smol_dev/internal/utils"
)

// WriteFile writes content to directory/relativePath, creating any missing
// parent directories. An existing file is overwritten.
func WriteFile(directory, relativePath, content string) (string, error) {
	filePath := filepath.Join(directory, relativePath)
	rel, err := filepath.Rel(directory, filePath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("refusing to write %q outside %s", relativePath, directory)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create directory path for %s: %w", relativePath, err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", filePath, err)
	}
	return filePath, nil
}

// CleanDir prepares directory for a fresh run. A missing directory is
// created. Otherwise every immediate file whose extension is not in keep is
// removed; subdirectories are left alone.
func CleanDir(directory string, keep []string) error {
	entries, err := os.ReadDir(directory)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(directory, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || utils.HasExtension(entry.Name(), keep) {
			continue
		}
		if err := os.Remove(filepath.Join(directory, entry.Name())); err != nil {
			return fmt.Errorf("failed to remove %s: %w", entry.Name(), err)
		}
	}
	return nil
}
