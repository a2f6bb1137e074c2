// Package config holds the compiled-in tunables of the cube demo.
//
// The values live in an embedded TOML document so they can be read in one place;
// nothing is loaded from disk, flags or the environment at runtime.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Config is the full set of tunables.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Renderer RendererConfig `toml:"renderer"`
	Debug    DebugConfig    `toml:"debug"`
}

// WindowConfig configures the OS window.
type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

// CameraConfig configures the first-person camera and its controller.
type CameraConfig struct {
	Position    [3]float32 `toml:"position"`
	Direction   [3]float32 `toml:"direction"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	FovDegrees  float32    `toml:"fov_degrees"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
}

// RendererConfig configures surface presentation and adapter selection.
type RendererConfig struct {
	PresentMode   string `toml:"present_mode"`
	ForceSoftware bool   `toml:"force_software"`
}

// DebugConfig toggles diagnostics.
type DebugConfig struct {
	Profiling bool `toml:"profiling"`
}

// Default decodes and validates the embedded defaults.
//
// Returns:
//   - Config: the default configuration
//   - error: error if the embedded document is malformed or invalid
func Default() (Config, error) {
	return Parse(defaultsTOML)
}

// Parse decodes a TOML document into a Config and validates it. Unknown keys are rejected.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - Config: the decoded configuration
//   - error: error if decoding or validation fails
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field joined into one error.
//
// Returns:
//   - error: nil when the configuration is usable
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera fov_degrees must be in (0, 180), got %v", c.Camera.FovDegrees))
	}
	if c.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("camera near must be positive, got %v", c.Camera.Near))
	}
	if c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera far (%v) must be greater than near (%v)", c.Camera.Far, c.Camera.Near))
	}
	if common.Vec3(c.Camera.Direction).IsZero() {
		errs = append(errs, errors.New("camera direction must be non-zero"))
	}
	if _, err := renderer.ParsePresentMode(c.Renderer.PresentMode); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// PresentMode returns the renderer present mode named by the configuration.
// Falls back to VSync for an unknown name; Validate reports those.
func (c Config) PresentMode() renderer.PresentMode {
	mode, _ := renderer.ParsePresentMode(c.Renderer.PresentMode)
	return mode
}

// FovRadians returns the vertical field of view in radians.
func (c Config) FovRadians() float32 {
	return common.DegreesToRadians(c.Camera.FovDegrees)
}
