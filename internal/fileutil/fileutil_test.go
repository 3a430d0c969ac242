package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	mustWrite(t, filepath.Join(src, "index.html"), "<html>")
	mustWrite(t, filepath.Join(src, "game", "script.rpy"), "label start:")

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("copy tree: %v", err)
	}
	for _, rel := range []string{"index.html", filepath.Join("game", "script.rpy")} {
		if _, err := os.Stat(filepath.Join(dst, rel)); err != nil {
			t.Fatalf("missing %s: %v", rel, err)
		}
	}
}

func TestMoveContents(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dest")
	mustWrite(t, filepath.Join(src, "index.html"), "<html>")
	mustWrite(t, filepath.Join(src, "assets", "logo.png"), "png")

	if err := MoveContents(src, dst); err != nil {
		t.Fatalf("move contents: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "assets", "logo.png")); err != nil {
		t.Fatalf("missing moved file: %v", err)
	}
	remaining, err := os.ReadDir(src)
	if err != nil {
		t.Fatalf("read src: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty source after move, found %d entries", len(remaining))
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
