package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the directory holding the .env file.
// Relative paths are taken from the user's home directory.
func GetRuntimePath() string {
	path := os.Getenv("ASSIST_RUNTIME_PATH")
	if path == "" {
		path = ".assistbot"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
