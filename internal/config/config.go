// Package config loads demo configuration from TOML files and watches
// them for live reload.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the demo application configuration.
type Config struct {
	Bus     BusConfig     `toml:"bus"`
	Log     LogConfig     `toml:"log"`
	Scripts ScriptsConfig `toml:"scripts"`
	Input   InputConfig   `toml:"input"`
}

// BusConfig configures the event bus.
type BusConfig struct {
	// QueueCapacity is the initial pending-event queue size.
	QueueCapacity int `toml:"queue_capacity"`
}

// LogConfig configures application logging.
type LogConfig struct {
	// Level is the minimum level to output: debug, info, warn, error.
	Level string `toml:"level"`
}

// ScriptsConfig configures Lua script handlers.
type ScriptsConfig struct {
	// Dir is a directory of *.lua handler scripts. Empty disables them.
	Dir string `toml:"dir"`
}

// InputConfig configures the interactive demo's input handling.
type InputConfig struct {
	// QuitKey is the key name that exits the demo.
	QuitKey string `toml:"quit_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Bus:   BusConfig{QueueCapacity: 64},
		Log:   LogConfig{Level: "info"},
		Input: InputConfig{QuitKey: "Esc"},
	}
}

// Load reads configuration from path, applied over the defaults.
// A missing file is not an error; Load returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}
