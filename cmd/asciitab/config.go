package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arnodel/ascii/internal/display"
)

const maxCols = 16

type fileConfig struct {
	Cols   int               `toml:"cols"`
	Colors map[string]string `toml:"colors"`
}

type Config struct {
	Cols      int
	Colorizer display.Colorizer
}

func defaultConfig() Config {
	return Config{
		Cols:      4,
		Colorizer: display.DefaultColorizer,
	}
}

// resolveConfig loads the file at path if given, otherwise looks for the
// default config file and falls back to the built-in defaults when there is
// none. It returns the loaded config and the path it came from, empty for
// the defaults.
func resolveConfig(path string) (Config, string, error) {
	if path != "" {
		cfg, err := loadConfig(path)
		return cfg, path, err
	}
	path = defaultConfigPath()
	if path == "" {
		return defaultConfig(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return defaultConfig(), "", nil
	}
	cfg, err := loadConfig(path)
	return cfg, path, err
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "asciitab", "config.toml")
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load asciitab config: %w", err)
	}

	if meta.IsDefined("cols") {
		if raw.Cols < 1 || raw.Cols > maxCols {
			return Config{}, fmt.Errorf("load asciitab config: cols must be between 1 and %d, got %d", maxCols, raw.Cols)
		}
		cfg.Cols = raw.Cols
	}

	for name, colorName := range raw.Colors {
		cat, err := display.CategoryByName(name)
		if err != nil {
			return Config{}, fmt.Errorf("load asciitab config: %w", err)
		}
		code, err := display.ColorByName(colorName)
		if err != nil {
			return Config{}, fmt.Errorf("load asciitab config: %w", err)
		}
		cfg.Colorizer.SetCategoryCode(cat, code)
	}

	return cfg, nil
}
