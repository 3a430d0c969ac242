// Package config loads, validates, and normalizes gamedock configuration
// from TOML files and GAMEDOCK_* environment overrides.
package config
