package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnodel/ascii/internal/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cols)
	assert.Equal(t, display.Yellow, cfg.Colorizer.CategoryCode(display.Digit))
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
cols = 8

[colors]
digit = "bright-yellow"
punct = "dim-cyan"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, display.BrightYellow, cfg.Colorizer.CategoryCode(display.Digit))
	assert.Equal(t, display.DimCyan, cfg.Colorizer.CategoryCode(display.Punct))
	// Categories the file does not mention keep their defaults.
	assert.Equal(t, display.Green, cfg.Colorizer.CategoryCode(display.Lower))
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"cols too small", "cols = 0"},
		{"cols too large", "cols = 99"},
		{"unknown category", "[colors]\nvowels = \"red\""},
		{"unknown color", "[colors]\ndigit = \"ultraviolet\""},
		{"not toml at all", "cols ==== what"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := loadConfig(path)
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestResolveConfigExplicitPath(t *testing.T) {
	path := writeConfig(t, "cols = 2")
	cfg, from, err := resolveConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, from)
	assert.Equal(t, 2, cfg.Cols)
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Cols)
	assert.Equal(t, display.BrightYellow, cfg.Colorizer.CategoryCode(display.Digit))
}
