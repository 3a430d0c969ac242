package renpy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gamedock/internal/services"
)

func newSDKDir(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "web"), 0o755); err != nil {
		t.Fatalf("mkdir web: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, launcherName()), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write launcher: %v", err)
	}
	return root
}

func TestDiscover(t *testing.T) {
	root := newSDKDir(t)
	sdk, err := Discover(root, "8.2.1")
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if sdk.Root != root || sdk.Version != "8.2.1" {
		t.Fatalf("unexpected sdk %#v", sdk)
	}
	if sdk.Launcher != filepath.Join(root, launcherName()) {
		t.Fatalf("unexpected launcher %q", sdk.Launcher)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover("", "")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if !strings.Contains(err.Error(), "no Ren'Py SDK configured") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDiscoverMissingWebSupport(t *testing.T) {
	root := newSDKDir(t)
	if err := os.RemoveAll(filepath.Join(root, "web")); err != nil {
		t.Fatalf("remove web dir: %v", err)
	}
	_, err := Discover(root, "")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if !strings.Contains(err.Error(), "web build support") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestDiscoverMissingLauncher(t *testing.T) {
	root := newSDKDir(t)
	if err := os.Remove(filepath.Join(root, launcherName())); err != nil {
		t.Fatalf("remove launcher: %v", err)
	}
	_, err := Discover(root, "")
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if !strings.Contains(err.Error(), "launcher executable") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestEnsureSigningKey(t *testing.T) {
	project := t.TempDir()
	if err := EnsureSigningKey(project); err != nil {
		t.Fatalf("ensure key: %v", err)
	}
	path := filepath.Join(project, signingKeyFile)
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if !strings.Contains(string(first), "EC PRIVATE KEY") {
		t.Fatalf("expected PEM key, got %q", first[:40])
	}

	// A second call must keep the existing file untouched.
	if err := EnsureSigningKey(project); err != nil {
		t.Fatalf("ensure key again: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reread key: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("existing signing key was regenerated")
	}
}

func TestStashIconsRestores(t *testing.T) {
	project := t.TempDir()
	iconPath := filepath.Join(project, "icon.ico")
	if err := os.WriteFile(iconPath, []byte("ico"), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}

	restore, err := stashIcons(project)
	if err != nil {
		t.Fatalf("stash: %v", err)
	}
	if _, err := os.Stat(iconPath); !os.IsNotExist(err) {
		t.Fatal("icon should be stashed away")
	}
	restore()
	if _, err := os.Stat(iconPath); err != nil {
		t.Fatalf("icon not restored: %v", err)
	}
}
