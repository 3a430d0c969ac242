package testsupport

import (
	"path/filepath"
	"testing"

	"gamedock/internal/config"
)

// NewConfig returns a config rooted in a fresh temp directory with all
// pipeline directories created.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := &config.Config{
		Paths: config.Paths{
			GamesDir:    filepath.Join(base, "games"),
			CatalogPath: filepath.Join(base, "games.json"),
			StagingDir:  filepath.Join(base, "staging"),
			LogDir:      filepath.Join(base, "logs"),
		},
		RenPy: config.RenPy{
			Platform:     "web",
			BuildTimeout: 5,
		},
		Logging: config.Logging{
			Format: "console",
			Level:  "info",
		},
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return cfg
}
