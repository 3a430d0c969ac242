package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and document locations.
type Paths struct {
	GamesDir    string `toml:"games_dir"`
	CatalogPath string `toml:"catalog_path"`
	StagingDir  string `toml:"staging_dir"`
	LogDir      string `toml:"log_dir"`
}

// RenPy contains configuration for the external Ren'Py SDK.
type RenPy struct {
	SDKDir       string `toml:"sdk_dir"`
	Version      string `toml:"version"`
	Platform     string `toml:"platform"`
	BuildTimeout int    `toml:"build_timeout"`
}

// Journal contains configuration for the ingestion run journal.
type Journal struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for gamedock.
type Config struct {
	Paths   Paths   `toml:"paths"`
	RenPy   RenPy   `toml:"renpy"`
	Journal Journal `toml:"journal"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/gamedock/config.toml")
}

// Load locates, parses, and validates a configuration file. A .env file in
// the working directory and GAMEDOCK_* environment variables override file
// values so non-interactive callers can configure the tool without editing
// TOML. The returned config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("gamedock.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) applyEnv() {
	if v, ok := lookupEnv("GAMEDOCK_GAMES_DIR"); ok {
		c.Paths.GamesDir = v
	}
	if v, ok := lookupEnv("GAMEDOCK_CATALOG"); ok {
		c.Paths.CatalogPath = v
	}
	if v, ok := lookupEnv("GAMEDOCK_STAGING_DIR"); ok {
		c.Paths.StagingDir = v
	}
	if v, ok := lookupEnv("GAMEDOCK_LOG_DIR"); ok {
		c.Paths.LogDir = v
	}
	if v, ok := lookupEnv("GAMEDOCK_SDK_DIR"); ok {
		c.RenPy.SDKDir = v
	}
	if v, ok := lookupEnv("GAMEDOCK_SDK_VERSION"); ok {
		c.RenPy.Version = v
	}
	if v, ok := lookupEnv("GAMEDOCK_BUILD_TIMEOUT"); ok {
		if secs, err := strconv.Atoi(v); err == nil {
			c.RenPy.BuildTimeout = secs
		}
	}
	if v, ok := lookupEnv("GAMEDOCK_LOG_LEVEL"); ok {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv("GAMEDOCK_LOG_FORMAT"); ok {
		c.Logging.Format = v
	}
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// EnsureDirectories creates the directories a pipeline run writes under.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.GamesDir, c.Paths.StagingDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if dir := filepath.Dir(c.Paths.CatalogPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create catalog directory %q: %w", dir, err)
		}
	}
	return nil
}

// GameDir returns the destination directory for the given game identifier.
func (c *Config) GameDir(id string) string {
	return filepath.Join(c.Paths.GamesDir, id)
}

// JournalPath returns the SQLite journal location, defaulting to a file
// beside the logs when unset.
func (c *Config) JournalPath() string {
	if strings.TrimSpace(c.Journal.Path) != "" {
		return c.Journal.Path
	}
	return filepath.Join(c.Paths.LogDir, "journal.db")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
