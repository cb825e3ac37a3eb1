package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig represents the optional TOML configuration file. Pointer fields
// distinguish "unset" from explicit zero values.
type fileConfig struct {
	Provider   *string       `toml:"provider"`
	Output     *string       `toml:"output"`
	SeasonType *string       `toml:"season-type"`
	Log        *fileLog      `toml:"log"`
	NBAStats   *fileNBAStats `toml:"nbastats"`
}

type fileLog struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

type fileNBAStats struct {
	BaseURL       *string `toml:"base-url"`
	UserAgent     *string `toml:"user-agent"`
	Referer       *string `toml:"referer"`
	Timeout       *string `toml:"timeout"`
	RetryAttempts *int    `toml:"retry-attempts"`
}

// loadFile reads the TOML config from the given path. A missing file is not
// an error; an unreadable or malformed one is.
func loadFile(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("stat config file: %w", err)
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("decode config file: %w", err)
	}
	return cfg, nil
}

// defaultConfigPath resolves the conventional config location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "shotchart", "config.toml")
}
