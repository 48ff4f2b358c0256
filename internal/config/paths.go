package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigFile walks up from the current working directory looking for
// notchbar.json and returns its absolute path.
func FindConfigFile() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return findUp(dir)
}

func findUp(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root.
			return "", fmt.Errorf("%s not found in any parent directory", FileName)
		}
		dir = parent
	}
}
