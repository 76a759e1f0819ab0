// Package utils provides small helpers shared by Phonebook packages.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ExpandPath expands ~ and normalizes the path.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(expandHome(path))
}

// ResolvePath expands path and, when it is still relative, joins it to base.
func ResolvePath(base, path string) string {
	expanded := ExpandPath(path)
	if expanded == "" || filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(base, expanded)
}
