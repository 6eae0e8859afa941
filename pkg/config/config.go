// Package config loads CLI and server configuration from a TOML file.
// Flags override the file, the file overrides the defaults; the packages
// under pkg/ never read configuration themselves.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Tato14/Ped-eeg-position/pkg/errors"
)

// Config is the on-disk configuration.
type Config struct {
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// RenderConfig sets the default appearance of generated diagrams.
type RenderConfig struct {
	Style  string  `toml:"style"`  // "clinical" or "print"
	Width  float64 `toml:"width"`  // viewport width in pixels
	Labels bool    `toml:"labels"` // draw electrode names
	Scale  float64 `toml:"scale"`  // raster scale factor for PNG
}

// CacheConfig selects and tunes the artifact cache backend.
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"`       // file backend root; empty means XDG default
	RedisURL string   `toml:"redis_url"` // when set, Redis replaces the file backend
	TTL      duration `toml:"ttl"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// duration adds TOML text unmarshalling to time.Duration ("24h", "30m").
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// Duration returns the cache TTL as a time.Duration.
func (c CacheConfig) Duration() time.Duration { return time.Duration(c.TTL) }

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Style:  "clinical",
			Width:  600,
			Labels: true,
			Scale:  2.0,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     duration(7 * 24 * time.Hour),
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file
// is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, nil
}

// Path returns the default configuration file location following the XDG
// convention (~/.config/pedeeg/config.toml).
func Path() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "pedeeg", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "pedeeg.toml")
	}
	return filepath.Join(home, ".config", "pedeeg", "config.toml")
}
