package overlay

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/glasskit/blurwindow"
)

// Config holds the fixed defaults a session is created with.
type Config struct {
	Bounds       blurwindow.Rect          `toml:"bounds"`
	TopMost      bool                     `toml:"top_most"`
	ClickThrough bool                     `toml:"click_through"`
	Preset       blurwindow.QualityPreset `toml:"preset"`

	EnableLogging bool   `toml:"enable_logging"`
	LogPath       string `toml:"log_path"`
}

// DefaultConfig returns the defaults the engine's demo shells use.
func DefaultConfig() Config {
	return Config{
		Bounds:        blurwindow.Rect{Left: 100, Top: 100, Right: 600, Bottom: 500},
		TopMost:       true,
		ClickThrough:  false,
		Preset:        blurwindow.PresetHigh,
		EnableLogging: true,
	}
}

// LoadConfig reads a TOML config file, filling unset fields from defaults.
// A missing file is not an error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(b, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as TOML.
func (c Config) Save(path string) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
