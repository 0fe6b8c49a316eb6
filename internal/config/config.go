// Package config loads runtime configuration for the shelfkeeper CLI.
//
// Sources and precedence:
//
//  1. Built-in defaults (LoadDefaults).
//  2. Optional JSON file selected via -c/-config.
//  3. Command-line flags, which override everything earlier.
package config

// Config holds runtime settings for the shelfkeeper CLI.
type Config struct {
	// DatabasePath is the SQLite file holding all slots.
	DatabasePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "shelfkeeper.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
