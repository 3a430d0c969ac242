package config

import "strings"

func (c *Config) normalize() error {
	var err error
	if c.Paths.GamesDir, err = expandPath(c.Paths.GamesDir); err != nil {
		return err
	}
	if c.Paths.CatalogPath, err = expandPath(c.Paths.CatalogPath); err != nil {
		return err
	}
	if c.Paths.StagingDir, err = expandPath(c.Paths.StagingDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if strings.TrimSpace(c.RenPy.SDKDir) != "" {
		if c.RenPy.SDKDir, err = expandPath(c.RenPy.SDKDir); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.Journal.Path) != "" {
		if c.Journal.Path, err = expandPath(c.Journal.Path); err != nil {
			return err
		}
	}
	if c.RenPy.Platform = strings.TrimSpace(c.RenPy.Platform); c.RenPy.Platform == "" {
		c.RenPy.Platform = "web"
	}
	return nil
}
