package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadBytesAndText(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "subject.bin", "payload")

	b, err := LoadBytes(p)
	if err != nil || string(b) != "payload" {
		t.Fatalf("LoadBytes: %q, %v", b, err)
	}
	s, err := LoadText(p)
	if err != nil || s != "payload" {
		t.Fatalf("LoadText: %q, %v", s, err)
	}
}

func TestLoadBytesMissingFile(t *testing.T) {
	_, err := LoadBytes(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "load bytes from") {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestRuleFilesInDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.rgz", "rule b {}")
	writeFile(t, dir, "a.rgz", "rule a {}")
	writeFile(t, dir, "notes.txt", "ignore me")

	files, err := RuleFilesInDir(dir)
	if err != nil {
		t.Fatalf("RuleFilesInDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 rule files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.rgz" || filepath.Base(files[1]) != "b.rgz" {
		t.Fatalf("files should be sorted by name: %v", files)
	}
}

func TestRuleFilesInDirEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "no rules here")
	if _, err := RuleFilesInDir(dir); err == nil {
		t.Fatalf("expected error when no rule files resolve")
	}
}

func TestBaseNamesAndCommaJoin(t *testing.T) {
	paths := []string{"/tmp/rules/a.rgz", "/tmp/rules/b.rgz"}
	names := BaseNames(paths)
	if names[0] != "a.rgz" || names[1] != "b.rgz" {
		t.Fatalf("BaseNames: %v", names)
	}
	if CommaJoin(names) != "a.rgz, b.rgz" {
		t.Fatalf("CommaJoin: %q", CommaJoin(names))
	}
}
