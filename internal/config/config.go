package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Defaults for a lookup when nothing is configured.
const (
	DefaultTheme = "hicolor"
	DefaultSize  = 24
	DefaultScale = 1
)

// Notify holds notification settings.
type Notify struct {
	Found   bool `toml:"found"`
	Missing bool `toml:"missing"`
}

// Config holds the command line tool configuration.
type Config struct {
	// Theme is empty to fall back to the desktop theme, then hicolor.
	Theme        string   `toml:"theme,omitempty" env:"ICONLOOKUP_THEME"`
	Size         int      `toml:"size" env:"ICONLOOKUP_SIZE"`
	Scale        int      `toml:"scale" env:"ICONLOOKUP_SCALE"`
	Cache        bool     `toml:"cache" env:"ICONLOOKUP_CACHE"`
	PreferRaster bool     `toml:"prefer_raster" env:"ICONLOOKUP_PREFER_RASTER"`
	BaseDirs     []string `toml:"base_dirs,omitempty" env:"ICONLOOKUP_BASE_DIRS" envSeparator:":"`
	LogLevel     string   `toml:"log_level" env:"ICONLOOKUP_LOG_LEVEL"`
	Notify       Notify   `toml:"notify"`
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Size:     DefaultSize,
		Scale:    DefaultScale,
		Cache:    true,
		LogLevel: "warn",
	}
}

// ApplyEnv overrides fields from ICONLOOKUP_* environment variables. Unset
// variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config env: %w", err)
	}
	return c.Validate()
}

// Validate rejects sizes and scales below 1.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", c.Size)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	return nil
}

// String implements fmt.Stringer and returns the configuration as TOML.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("# encode config: %v\n", err)
	}
	return sb.String()
}
