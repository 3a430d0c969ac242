package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exists {
		t.Fatalf("expected missing config file")
	}
	if cfg.RenPy.BuildTimeout != 300 {
		t.Fatalf("expected default build timeout, got %d", cfg.RenPy.BuildTimeout)
	}
	if cfg.RenPy.Platform != "web" {
		t.Fatalf("expected default platform, got %q", cfg.RenPy.Platform)
	}
	if !filepath.IsAbs(cfg.Paths.GamesDir) {
		t.Fatalf("expected games dir to be absolute, got %q", cfg.Paths.GamesDir)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`games_dir = "` + filepath.Join(dir, "games") + `"`,
		`catalog_path = "` + filepath.Join(dir, "games.json") + `"`,
		"[renpy]",
		`sdk_dir = "` + dir + `"`,
		"build_timeout = 42",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.RenPy.BuildTimeout != 42 {
		t.Fatalf("expected build timeout 42, got %d", cfg.RenPy.BuildTimeout)
	}
	if cfg.Paths.GamesDir != filepath.Join(dir, "games") {
		t.Fatalf("unexpected games dir %q", cfg.Paths.GamesDir)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GAMEDOCK_SDK_DIR", dir)
	t.Setenv("GAMEDOCK_BUILD_TIMEOUT", "7")

	cfg, _, _, err := Load(filepath.Join(dir, "absent.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RenPy.SDKDir != dir {
		t.Fatalf("expected env sdk dir %q, got %q", dir, cfg.RenPy.SDKDir)
	}
	if cfg.RenPy.BuildTimeout != 7 {
		t.Fatalf("expected env build timeout, got %d", cfg.RenPy.BuildTimeout)
	}
}

func TestValidateRejectsBadFormat(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := Default()
	cfg.RenPy.BuildTimeout = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for negative timeout")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[renpy]") {
		t.Fatalf("sample config missing renpy section")
	}
}
