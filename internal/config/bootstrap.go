package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// EnsureUserConfig seeds the data dir with the shipped defaults on first
// run. An existing config.yml is never touched, so local edits survive
// upgrades.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("bootstrap config: %w", err)
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		return "", fmt.Errorf("bootstrap config: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", fmt.Errorf("bootstrap config: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("bootstrap config: %w", err)
	}
	return userPath, nil
}
