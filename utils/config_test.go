package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 16, cfg.CellSize)
	require.Equal(t, 0.25, cfg.AliveChance)
	require.Equal(t, 100*time.Millisecond, cfg.TickInterval)
	require.Equal(t, "monochrome", cfg.ColorMode)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"width not a multiple of cell size", func(c *Config) { c.Width = 810 }},
		{"height not a multiple of cell size", func(c *Config) { c.Height = 641 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative chance", func(c *Config) { c.AliveChance = -0.1 }},
		{"chance above one", func(c *Config) { c.AliveChance = 1.5 }},
		{"zero interval", func(c *Config) { c.TickInterval = 0 }},
		{"unknown color mode", func(c *Config) { c.ColorMode = "sepia" }},
		{"unknown seeding", func(c *Config) { c.Seeding = "acorn" }},
		{"unknown display", func(c *Config) { c.Display = "printer" }},
		{"unknown pacing", func(c *Config) { c.Pacing = "vsync" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"width": 320, "height": 160, "color_mode": "random", "tick_interval": 50000000, "display": "headless"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 320, cfg.Width)
	require.Equal(t, 160, cfg.Height)
	require.Equal(t, "random", cfg.ColorMode)
	require.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	require.Equal(t, DisplayHeadless, cfg.Display)
	// Unset keys keep their defaults
	require.Equal(t, 0.25, cfg.AliveChance)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "[LoadConfig] failed to read file")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "[LoadConfig] failed to unmarshal")
}
