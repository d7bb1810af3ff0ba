package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Stress  StressConfig  `toml:"stress"`
	Logging LoggingConfig `toml:"logging"`
}

type StressConfig struct {
	Worlds    int     `toml:"worlds"`
	Spawns    int     `toml:"spawns"`
	PreAttach float64 `toml:"pre_attach_fraction"` // fraction spawned before the registry attaches (0.0-1.0)
	Seed      int64   `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func defaults() *Config {
	return &Config{
		Stress: StressConfig{
			Worlds:    4,
			Spawns:    100000,
			PreAttach: 0.25,
			Seed:      1,
		},
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
		},
	}
}

func loadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
