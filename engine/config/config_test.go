package config

import (
	"testing"

	"github.com/Carmen-Shannon/wirecube/engine/renderer"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Title: "Cube", Width: 800, Height: 600, Resizable: true}, cfg.Window)
	assert.Equal(t, [3]float32{0, 0, -2}, cfg.Camera.Position)
	assert.Equal(t, [3]float32{0, 0, 1}, cfg.Camera.Direction)
	assert.Equal(t, float32(2), cfg.Camera.Speed)
	assert.Equal(t, float32(0.002), cfg.Camera.Sensitivity)
	assert.Equal(t, float32(0.1), cfg.Camera.Near)
	assert.Equal(t, float32(100), cfg.Camera.Far)
	assert.InDelta(t, math32.Pi/4, cfg.FovRadians(), 1e-6)
	assert.Equal(t, renderer.PresentModeVSync, cfg.PresentMode())
	assert.False(t, cfg.Renderer.ForceSoftware)
	assert.False(t, cfg.Debug.Profiling)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[window]\ntitel = \"typo\"\n"))
	assert.ErrorContains(t, err, "failed to decode")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("[window\n"))
	assert.ErrorContains(t, err, "failed to decode")
}

func TestValidate(t *testing.T) {
	valid, err := Default()
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size must be positive"},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, "window size must be positive"},
		{"zero speed", func(c *Config) { c.Camera.Speed = 0 }, "speed must be positive"},
		{"negative sensitivity", func(c *Config) { c.Camera.Sensitivity = -0.1 }, "sensitivity must be positive"},
		{"fov too wide", func(c *Config) { c.Camera.FovDegrees = 180 }, "fov_degrees must be in (0, 180)"},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }, "near must be positive"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.05 }, "must be greater than near"},
		{"zero direction", func(c *Config) { c.Camera.Direction = [3]float32{} }, "direction must be non-zero"},
		{"unknown present mode", func(c *Config) { c.Renderer.PresentMode = "triple" }, `unknown present mode "triple"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	cfg.Camera.Speed = 0
	cfg.Window.Width = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "speed")
}
