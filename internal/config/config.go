package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

type EngineConfig struct {
	Ticks      int    `toml:"ticks"`       // update ticks the demo host runs
	ScenePath  string `toml:"scene_path"`  // yaml spawn table for the startup scene
	ScriptsDir string `toml:"scripts_dir"` // lua system scripts, empty disables scripting
}

type StorageConfig struct {
	PageSize uint32 `toml:"page_size"` // sparse set lookup page width
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads a toml config file over the built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			Ticks:     3,
			ScenePath: "data/scenes/demo.yaml",
		},
		Storage: StorageConfig{
			PageSize: 32,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
