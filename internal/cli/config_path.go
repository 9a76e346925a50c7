package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"globebench/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return config.Resolve("")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return config.Resolve(abs)
}
