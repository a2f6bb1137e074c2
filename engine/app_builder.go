package engine

import (
	"time"

	"github.com/Carmen-Shannon/wirecube/engine/camera"
	"github.com/Carmen-Shannon/wirecube/engine/input"
	"github.com/Carmen-Shannon/wirecube/engine/model"
	"github.com/Carmen-Shannon/wirecube/engine/profiler"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/pipeline"
)

// AppBuilderOption is a functional option for configuring an App.
// Use the With* functions to create options that are applied directly to the app instance.
type AppBuilderOption func(*app)

// WithPipeline sets the render pipeline the model is drawn with. Required.
//
// Parameters:
//   - p: the unregistered pipeline; NewApp registers it with the renderer
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithPipeline(p pipeline.Pipeline) AppBuilderOption {
	return func(a *app) {
		a.pipeline = p
	}
}

// WithCamera sets the camera. Defaults to camera.NewCamera().
//
// Parameters:
//   - c: the camera to drive
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithCamera(c camera.Camera) AppBuilderOption {
	return func(a *app) {
		a.camera = c
	}
}

// WithInput sets the input state the loop folds key events into. Defaults to input.NewState().
//
// Parameters:
//   - s: the input state
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithInput(s input.State) AppBuilderOption {
	return func(a *app) {
		a.input = s
	}
}

// WithModel sets the drawn model. Defaults to model.NewCube().
//
// Parameters:
//   - m: the model
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithModel(m model.Model) AppBuilderOption {
	return func(a *app) {
		a.model = m
	}
}

// WithSensitivity sets the mouse-look sensitivity in radians per pixel.
// Non-positive values keep DefaultSensitivity.
//
// Parameters:
//   - s: the sensitivity
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithSensitivity(s float32) AppBuilderOption {
	return func(a *app) {
		if s > 0 {
			a.sensitivity = s
		}
	}
}

// WithClock replaces time.Now as the source of frame timestamps in Run.
//
// Parameters:
//   - clock: returns the current time
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithClock(clock func() time.Time) AppBuilderOption {
	return func(a *app) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithProfiling(enabled bool) AppBuilderOption {
	return func(a *app) {
		a.profilingEnabled = enabled
	}
}

// WithProfiler sets a custom profiler and enables profiling.
//
// Parameters:
//   - p: the profiler to tick once per frame
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) AppBuilderOption {
	return func(a *app) {
		a.profiler = p
		a.profilingEnabled = p != nil
	}
}
