package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration invariants that would otherwise surface as
// confusing mid-pipeline failures.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Paths.GamesDir) == "" {
		return fmt.Errorf("config: paths.games_dir must be set")
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return fmt.Errorf("config: paths.catalog_path must be set")
	}
	if c.RenPy.BuildTimeout < 0 {
		return fmt.Errorf("config: renpy.build_timeout must not be negative")
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
