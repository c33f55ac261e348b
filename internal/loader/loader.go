// Package loader reads scan subjects and rule sources from disk.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// RuleExt is the fixed extension rule files are expected to carry.
const RuleExt = ".rgz"

// LoadBytes reads the scan subject from a file.
func LoadBytes(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load bytes from %s: %w", path, err)
	}
	return b, nil
}

// LoadText reads a rule source file.
func LoadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load rules from %s: %w", path, err)
	}
	return string(b), nil
}

// RuleFilesInDir lists every rule file directly inside dir, sorted by
// name. Zero resolved files is an error: a scan with no rules is always
// a caller mistake.
func RuleFilesInDir(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*"+RuleExt)
	files, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("list rule files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", RuleExt, dir)
	}
	sort.Strings(files)
	return files, nil
}

// BaseNames maps paths to their base file names.
func BaseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

// CommaJoin renders a list the way scan labels want it.
func CommaJoin(items []string) string {
	return strings.Join(items, ", ")
}
