// Package utils holds small helpers shared by the configuration layers.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and $VAR / ${VAR} references in a
// configured path. Unset variables expand to the empty string.
func ExpandPath(path string) string {
	if !strings.ContainsAny(path, "~$") {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	return os.ExpandEnv(path)
}
