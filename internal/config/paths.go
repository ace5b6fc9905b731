package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveDataDir expands a leading "~/" against the user's home directory.
// Other paths are returned cleaned but otherwise unchanged.
func ResolveDataDir(configuredPath string) (string, error) {
	if configuredPath == "" {
		return "", nil
	}
	if configuredPath == "~" || strings.HasPrefix(configuredPath, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, strings.TrimPrefix(configuredPath, "~")), nil
	}
	return filepath.Clean(configuredPath), nil
}
