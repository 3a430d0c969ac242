package config

// Default returns the built-in configuration used before any file or
// environment overrides are applied.
func Default() Config {
	return Config{
		Paths: Paths{
			GamesDir:    "~/.local/share/gamedock/games",
			CatalogPath: "~/.local/share/gamedock/games.json",
			StagingDir:  "~/.local/share/gamedock/staging",
			LogDir:      "~/.local/share/gamedock/logs",
		},
		RenPy: RenPy{
			Platform:     "web",
			BuildTimeout: 300,
		},
		Journal: Journal{
			Enabled: true,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
