package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults_Valid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"no scale no width", func(c *Config) { c.Raster.Scale = 0 }, "scale or width"},
		{"width only", func(c *Config) { c.Raster.Scale = 0; c.Raster.Width = 800 }, ""},
		{"negative margin", func(c *Config) { c.Raster.Margin = -1 }, "margin"},
		{"zero line width", func(c *Config) { c.Raster.LineWidth = 0 }, "line_width"},
		{"bad stroke", func(c *Config) { c.Raster.Stroke = "black" }, "stroke"},
		{"short background", func(c *Config) { c.Raster.Background = "#FFF" }, ""},
		{"bad background", func(c *Config) { c.Raster.Background = "#GG0000" }, "background"},
		{"zero step", func(c *Config) { c.View.Step = 0 }, "step"},
		{"negative debounce", func(c *Config) { c.Watch.Debounce = -time.Second }, "debounce"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.Equal(t, Defaults(), cfg)
}
