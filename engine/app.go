package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/wirecube/engine/camera"
	"github.com/Carmen-Shannon/wirecube/engine/input"
	"github.com/Carmen-Shannon/wirecube/engine/model"
	"github.com/Carmen-Shannon/wirecube/engine/profiler"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/wirecube/engine/window"
)

// uniformGroup and uniformBinding locate the view/projection uniform block in both shaders.
const (
	uniformGroup   = 0
	uniformBinding = 0
)

// DefaultSensitivity is the mouse-look rotation in radians per pixel of cursor offset.
const DefaultSensitivity float32 = 0.002

// app implements the App interface.
// It owns every per-frame resource; all methods run on the thread that created the window.
type app struct {
	window   window.Window
	renderer renderer.Renderer
	camera   camera.Camera
	input    input.State
	model    model.Model
	pipeline pipeline.Pipeline

	uniforms bind_group_provider.BindGroupProvider

	sensitivity float32
	clock       func() time.Time
	lastFrame   time.Time
	closing     bool

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// App is the frame loop of the cube demo.
// Each iteration polls window events, folds them into input and surface state,
// then runs one Frame: camera update, uniform upload and one indexed line-list draw.
type App interface {
	// Run loops until the window closes. The first frame error ends the loop and is returned.
	//
	// Returns:
	//   - error: the error that stopped the loop, nil on a normal close
	Run() error

	// HandleEvents folds window events into the input state and surface size.
	//
	// Parameters:
	//   - events: the events in arrival order
	//
	// Returns:
	//   - error: error if the surface could not be reconfigured
	HandleEvents(events []window.Event) error

	// Frame runs one update and render step at the given time.
	// The frame is skipped while the surface has a zero size.
	//
	// Parameters:
	//   - now: the timestamp of this frame
	//
	// Returns:
	//   - error: error if the frame could not be acquired, drawn or submitted
	Frame(now time.Time) error

	// Camera returns the camera driven by the loop.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera

	// Input returns the held-key state.
	//
	// Returns:
	//   - input.State: the input state
	Input() input.State

	// Release releases the mesh and uniform GPU resources and the renderer.
	Release()
}

var _ App = &app{}

// NewApp wires the window and renderer into a frame loop. It registers the pipeline,
// uploads the model's vertex and index buffers and creates the uniform buffer and its
// bind group. These GPU objects are created once and live until Release.
// The app takes ownership of the renderer and releases it with its own resources.
//
// Parameters:
//   - w: the open window
//   - r: the renderer drawing into the window's surface
//   - options: functional options to configure the app
//
// Returns:
//   - App: the ready frame loop
//   - error: error if a GPU resource could not be created
func NewApp(w window.Window, r renderer.Renderer, options ...AppBuilderOption) (App, error) {
	if w == nil || r == nil {
		return nil, errors.New("app: window and renderer are required")
	}
	a := &app{
		window:      w,
		renderer:    r,
		sensitivity: DefaultSensitivity,
		clock:       time.Now,
	}
	for _, opt := range options {
		opt(a)
	}
	if a.pipeline == nil {
		return nil, errors.New("app: a pipeline is required")
	}
	if a.camera == nil {
		a.camera = camera.NewCamera()
	}
	if a.input == nil {
		a.input = input.NewState()
	}
	if a.model == nil {
		a.model = model.NewCube()
	}
	if a.profilingEnabled && a.profiler == nil {
		a.profiler = profiler.NewProfiler()
	}

	if err := a.initResources(); err != nil {
		a.Release()
		return nil, err
	}

	a.window.SetCursorPosition(input.Center(a.window.Size()))
	return a, nil
}

func (a *app) initResources() error {
	if err := a.renderer.RegisterPipelines(a.pipeline); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	mesh := bind_group_provider.NewBindGroupProvider(a.model.Name() + " Mesh")
	a.model.SetMeshProvider(mesh)
	if err := a.renderer.InitMeshBuffers(mesh, a.model.VertexData(), a.model.IndexData(), a.model.IndexCount()); err != nil {
		return fmt.Errorf("app: failed to create mesh buffers: %w", err)
	}

	descriptor, ok := a.pipeline.BindGroupLayoutDescriptors()[uniformGroup]
	if !ok {
		return fmt.Errorf("app: pipeline %q declares no bind group %d", a.pipeline.PipelineKey(), uniformGroup)
	}
	var block camera.GPUUniforms
	for _, entry := range descriptor.Entries {
		if int(entry.Binding) == uniformBinding && entry.Buffer.MinBindingSize != uint64(block.Size()) {
			return fmt.Errorf("app: uniform binding is %d bytes, want %d", entry.Buffer.MinBindingSize, block.Size())
		}
	}
	a.uniforms = bind_group_provider.NewBindGroupProvider(a.model.Name() + " Uniforms")
	if err := a.renderer.InitBindGroup(a.uniforms, descriptor); err != nil {
		return fmt.Errorf("app: failed to create uniform bind group: %w", err)
	}
	return nil
}

func (a *app) Run() error {
	log.Printf("[Cube] running")
	for !a.closing && a.window.IsRunning() {
		if err := a.HandleEvents(a.window.PollEvents()); err != nil {
			return err
		}
		if a.closing {
			break
		}
		if err := a.Frame(a.clock()); err != nil {
			return err
		}
	}
	log.Printf("[Cube] window closed")
	return nil
}

func (a *app) HandleEvents(events []window.Event) error {
	for _, e := range events {
		switch e.Kind {
		case window.EventKey:
			a.input.OnKey(e.KeyCode, e.Pressed)
		case window.EventResize:
			if err := a.renderer.Resize(e.Width, e.Height); err != nil {
				return err
			}
			log.Printf("[Cube] resized to %dx%d", e.Width, e.Height)
		case window.EventClose:
			a.closing = true
		}
	}
	return nil
}

func (a *app) Frame(now time.Time) error {
	width, height := a.renderer.SurfaceSize()
	if width == 0 || height == 0 {
		// Restart the clock so the first visible frame does not move the camera by the minimized time.
		a.lastFrame = time.Time{}
		return nil
	}

	if err := a.renderer.BeginFrame(); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	var dt float32
	if !a.lastFrame.IsZero() {
		dt = float32(now.Sub(a.lastFrame).Seconds())
	}
	a.lastFrame = now

	ctrl := a.camera.Controller()
	ctrl.Update(a.input, dt)

	winWidth, winHeight := a.window.Size()
	cursorX, cursorY := a.window.CursorPosition()
	dx, dy := input.MouseDelta(cursorX, cursorY, winWidth, winHeight)
	ctrl.ApplyLook(float32(dx), float32(dy), a.sensitivity)
	a.window.SetCursorPosition(input.Center(winWidth, winHeight))

	block := a.camera.Uniforms(float32(width) / float32(height))
	writes := []bind_group_provider.BufferWrite{
		bind_group_provider.NewUniformWrite(a.uniforms, uniformBinding, block.Marshal()),
	}
	if err := a.renderer.WriteBuffers(writes); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := a.renderer.DrawCall(a.pipeline.PipelineKey(), a.model.MeshProvider(), []bind_group_provider.BindGroupProvider{a.uniforms}); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := a.renderer.EndFrame(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	a.renderer.Present()

	if a.profilingEnabled && a.profiler != nil {
		a.profiler.Tick(now)
	}
	return nil
}

func (a *app) Camera() camera.Camera {
	return a.camera
}

func (a *app) Input() input.State {
	return a.input
}

func (a *app) Release() {
	if a.model != nil && a.model.MeshProvider() != nil {
		a.model.MeshProvider().Release()
	}
	if a.uniforms != nil {
		a.uniforms.Release()
	}
	a.renderer.Release()
}
