// Package config loads the optional themesync.yaml run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTokenEnv is the environment variable consulted for the Figma
// personal access token when the config does not name another one.
const DefaultTokenEnv = "FIGMA_TOKEN"

// Config holds a sync run's settings. Everything has a flag counterpart;
// flags override config values. The access token itself never lives in
// the file, only the name of the environment variable that carries it.
type Config struct {
	// Figma file URL to sync from.
	FileURL string `yaml:"file_url"`

	// Environment variable holding the access token (default FIGMA_TOKEN).
	TokenEnv string `yaml:"token_env"`

	// Local snapshot of a file-API response; takes precedence over FileURL.
	Snapshot string `yaml:"snapshot"`

	// Output stylesheet path.
	Output string `yaml:"output"`

	// Names of the content container and per-group palette child.
	ContentGroup string `yaml:"content_group"`
	PaletteGroup string `yaml:"palette_group"`

	// Emit #rrggbb companion variables alongside the R G B triplets.
	Hex bool `yaml:"hex"`

	// Token name -> CSS color string; replaces or adds tokens.
	Overrides map[string]string `yaml:"overrides"`

	Watch WatchConfig `yaml:"watch"`
}

// WatchConfig configures snapshot watch mode.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// Default returns a Config with the standard defaults applied.
func Default() *Config {
	return &Config{
		TokenEnv: DefaultTokenEnv,
		Output:   "theme.css",
		Watch:    WatchConfig{DebounceMs: 200},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.TokenEnv == "" {
		c.TokenEnv = DefaultTokenEnv
	}
	if c.Output == "" {
		c.Output = "theme.css"
	}
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = 200
	}
}

// Token resolves the access token from the configured environment variable.
func (c *Config) Token() string {
	return os.Getenv(c.TokenEnv)
}
