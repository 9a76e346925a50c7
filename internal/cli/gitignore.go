package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// discoverGitRoot walks upward from startDir until it finds a .git entry.
// Returns empty when startDir is not inside a git work tree.
func discoverGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for dir != filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		dir = filepath.Dir(dir)
	}
	return ""
}

// addGitignoreEntry appends outputDir to the repo's .gitignore unless an
// equivalent line is already present. Reports whether the file changed.
func addGitignoreEntry(repoRoot, outputDir string) (bool, error) {
	entry, err := gitignoreEntry(repoRoot, outputDir)
	if err != nil {
		return false, err
	}

	path := filepath.Join(repoRoot, ".gitignore")
	contents, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("read .gitignore: %w", err)
	}
	for _, line := range strings.Split(string(contents), "\n") {
		if strings.TrimSpace(line) == entry {
			return false, nil
		}
	}

	var builder strings.Builder
	builder.Write(contents)
	if builder.Len() > 0 && !strings.HasSuffix(builder.String(), "\n") {
		builder.WriteByte('\n')
	}
	builder.WriteString(entry)
	builder.WriteByte('\n')
	if err := os.WriteFile(path, []byte(builder.String()), 0o644); err != nil {
		return false, fmt.Errorf("write .gitignore: %w", err)
	}
	return true, nil
}

// gitignoreEntry turns outputDir into a slash-separated path relative to
// the repo root, rejecting anything outside the work tree.
func gitignoreEntry(repoRoot, outputDir string) (string, error) {
	if strings.TrimSpace(outputDir) == "" {
		return "", fmt.Errorf("output dir is required")
	}
	entry := filepath.Clean(outputDir)
	if filepath.IsAbs(entry) {
		rel, err := filepath.Rel(repoRoot, entry)
		if err != nil {
			return "", fmt.Errorf("resolve output dir: %w", err)
		}
		entry = rel
	}
	entry = strings.TrimPrefix(entry, "."+string(filepath.Separator))
	if entry == "" || entry == "." || entry == ".." || strings.HasPrefix(entry, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("output dir %q is outside the repo root", outputDir)
	}
	return filepath.ToSlash(entry), nil
}
