package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path // Return unchanged if we can't get home
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// ExpandPath expands a leading ~ and any $VAR or ${VAR} references.
// Unset variables expand to the empty string.
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandTilde(path))
}
