package engine

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/camera"
	"github.com/Carmen-Shannon/wirecube/engine/profiler"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/Carmen-Shannon/wirecube/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexShader = `
struct Uniforms {
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
}
@group(0) @binding(0) var<uniform> uniforms: Uniforms;
struct VertexInput {
    @location(0) position: vec3<f32>,
}
@vertex
fn vs_main(vertex: VertexInput) -> @builtin(position) vec4<f32> {
    return uniforms.projection * uniforms.view * vec4<f32>(vertex.position, 1.0);
}
`

const testFragmentShader = `
struct Uniforms {
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
}
@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0);
}
`

type fakeWindow struct {
	width, height   int
	cursorX         float64
	cursorY         float64
	cursorSets      int
	running         bool
	pending         [][]window.Event
	pollCount       int
	closeAfterPolls int
}

func (w *fakeWindow) PollEvents() []window.Event {
	w.pollCount++
	if w.closeAfterPolls > 0 && w.pollCount >= w.closeAfterPolls {
		w.running = false
	}
	if len(w.pending) == 0 {
		return nil
	}
	events := w.pending[0]
	w.pending = w.pending[1:]
	return events
}

func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }
func (w *fakeWindow) IsRunning() bool                           { return w.running }
func (w *fakeWindow) Close() error                              { w.running = false; return nil }
func (w *fakeWindow) Size() (int, int)                          { return w.width, w.height }
func (w *fakeWindow) FramebufferSize() (int, int)               { return w.width, w.height }
func (w *fakeWindow) CursorPosition() (float64, float64)        { return w.cursorX, w.cursorY }

func (w *fakeWindow) SetCursorPosition(x, y float64) {
	w.cursorX, w.cursorY = x, y
	w.cursorSets++
}

// fakeRenderer records the frame sequence without a GPU.
type fakeRenderer struct {
	width, height int
	pipelines     map[string]pipeline.Pipeline
	calls         []string
	uploads       [][]byte
	drawMesh      bind_group_provider.BindGroupProvider
	drawGroups    []bind_group_provider.BindGroupProvider
	released      bool
}

var (
	_ renderer.Renderer = &fakeRenderer{}
	_ window.Window     = &fakeWindow{}
)

func newFakeRenderer(width, height int) *fakeRenderer {
	return &fakeRenderer{width: width, height: height, pipelines: map[string]pipeline.Pipeline{}}
}

func (r *fakeRenderer) Pipeline(key string) pipeline.Pipeline { return r.pipelines[key] }

func (r *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		r.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (r *fakeRenderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	r.width, r.height = width, height
	r.calls = append(r.calls, "resize")
	return nil
}

func (r *fakeRenderer) SurfaceSize() (int, int)           { return r.width, r.height }
func (r *fakeRenderer) SurfaceFormat() wgpu.TextureFormat { return wgpu.TextureFormatBGRA8UnormSrgb }

func (r *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	provider.SetIndexCount(indexCount)
	return nil
}

func (r *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	for _, e := range descriptor.Entries {
		provider.SetBuffer(int(e.Binding), &wgpu.Buffer{})
	}
	return nil
}

func (r *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) error {
	for _, w := range writes {
		r.uploads = append(r.uploads, w.Data)
	}
	r.calls = append(r.calls, "write")
	return nil
}

func (r *fakeRenderer) BeginFrame() error {
	r.calls = append(r.calls, "begin")
	return nil
}

func (r *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider) error {
	r.drawMesh = meshProvider
	r.drawGroups = bindGroups
	r.calls = append(r.calls, "draw:"+pipelineKey)
	return nil
}

func (r *fakeRenderer) EndFrame() error {
	r.calls = append(r.calls, "end")
	return nil
}

func (r *fakeRenderer) Present() { r.calls = append(r.calls, "present") }

func (r *fakeRenderer) Release() { r.released = true }

func newTestPipeline(t *testing.T) pipeline.Pipeline {
	t.Helper()
	vs, err := shader.NewShader("cube-vert", shader.ShaderTypeVertex, testVertexShader)
	require.NoError(t, err)
	fs, err := shader.NewShader("cube-frag", shader.ShaderTypeFragment, testFragmentShader)
	require.NoError(t, err)
	return pipeline.NewPipeline("cube", pipeline.WithVertexShader(vs), pipeline.WithFragmentShader(fs), pipeline.WithWireframe())
}

func newTestApp(t *testing.T, options ...AppBuilderOption) (App, *fakeWindow, *fakeRenderer) {
	t.Helper()
	w := &fakeWindow{width: 800, height: 600, running: true}
	r := newFakeRenderer(800, 600)
	a, err := NewApp(w, r, append([]AppBuilderOption{WithPipeline(newTestPipeline(t))}, options...)...)
	require.NoError(t, err)
	return a, w, r
}

func TestNewAppCreatesResources(t *testing.T) {
	a, w, r := newTestApp(t)

	assert.NotNil(t, r.Pipeline("cube"))
	assert.Equal(t, 400.0, w.cursorX)
	assert.Equal(t, 300.0, w.cursorY)
	assert.NotNil(t, a.Camera())
	assert.NotNil(t, a.Input())

	a.Release()
	assert.True(t, r.released)
}

func TestNewAppRequiresPipeline(t *testing.T) {
	_, err := NewApp(&fakeWindow{}, newFakeRenderer(800, 600))
	assert.ErrorContains(t, err, "pipeline is required")

	_, err = NewApp(nil, nil)
	assert.ErrorContains(t, err, "window and renderer are required")
}

func TestNewAppRejectsWrongUniformSize(t *testing.T) {
	vs, err := shader.NewShader("v", shader.ShaderTypeVertex, `
@group(0) @binding(0) var<uniform> scale: f32;
struct VertexInput { @location(0) position: vec3<f32> }
@vertex fn vs_main(vertex: VertexInput) -> @builtin(position) vec4<f32> { return vec4<f32>(vertex.position * scale, 1.0); }
`)
	require.NoError(t, err)
	fs, err := shader.NewShader("f", shader.ShaderTypeFragment, `@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }`)
	require.NoError(t, err)
	p := pipeline.NewPipeline("bad", pipeline.WithVertexShader(vs), pipeline.WithFragmentShader(fs))

	r := newFakeRenderer(800, 600)
	_, err = NewApp(&fakeWindow{}, r, WithPipeline(p))
	assert.ErrorContains(t, err, "uniform binding is 4 bytes, want 128")
	assert.True(t, r.released)
}

func TestFrameSequence(t *testing.T) {
	a, _, r := newTestApp(t)

	require.NoError(t, a.Frame(time.Unix(0, 0)))

	assert.Equal(t, []string{"begin", "write", "draw:cube", "end", "present"}, r.calls)
	require.Len(t, r.uploads, 1)
	assert.Len(t, r.uploads[0], 128)
	require.NotNil(t, r.drawMesh)
	assert.Equal(t, 24, r.drawMesh.IndexCount())
	require.Len(t, r.drawGroups, 1)
	assert.NotNil(t, r.drawGroups[0].Buffer(0))
}

func TestFrameUploadsCameraMatrices(t *testing.T) {
	a, _, r := newTestApp(t)

	require.NoError(t, a.Frame(time.Unix(0, 0)))

	block := a.Camera().Uniforms(800.0 / 600.0)
	assert.Equal(t, block.Marshal(), r.uploads[0])
}

func TestHoldingWMovesForward(t *testing.T) {
	ctrl := camera.NewCameraController(camera.WithPosition(common.Vec3{}), camera.WithDirection(common.Vec3{0, 0, 1}), camera.WithSpeed(2))
	a, _, _ := newTestApp(t, WithCamera(camera.NewCamera(camera.WithController(ctrl))))

	require.NoError(t, a.HandleEvents([]window.Event{{Kind: window.EventKey, KeyCode: common.KeyW, Pressed: true}}))

	start := time.Unix(100, 0)
	for i := 0; i <= 60; i++ {
		require.NoError(t, a.Frame(start.Add(time.Duration(i)*time.Second/60)))
	}

	pos := ctrl.Position()
	assert.InDelta(t, 0, pos[0], 1e-4)
	assert.InDelta(t, 0, pos[1], 1e-4)
	assert.InDelta(t, 2, pos[2], 1e-3)
}

func TestMouseLookRecentersCursor(t *testing.T) {
	a, w, _ := newTestApp(t)
	before := a.Camera().Controller().Direction()

	w.cursorX, w.cursorY = 450, 300
	require.NoError(t, a.Frame(time.Unix(0, 0)))

	after := a.Camera().Controller().Direction()
	assert.NotEqual(t, before, after)
	assert.InDelta(t, before[1], after[1], 1e-6)
	assert.Equal(t, 400.0, w.cursorX)
	assert.Equal(t, 300.0, w.cursorY)

	// a centered cursor leaves the direction alone
	require.NoError(t, a.Frame(time.Unix(1, 0)))
	assert.Equal(t, after, a.Camera().Controller().Direction())
}

func TestZeroSizeSkipsFrame(t *testing.T) {
	a, _, r := newTestApp(t)

	require.NoError(t, a.HandleEvents([]window.Event{{Kind: window.EventResize, Width: 0, Height: 0}}))
	require.NoError(t, a.Frame(time.Unix(0, 0)))
	assert.Equal(t, []string{"resize"}, r.calls)

	require.NoError(t, a.HandleEvents([]window.Event{{Kind: window.EventResize, Width: 1024, Height: 768}}))
	require.NoError(t, a.Frame(time.Unix(1, 0)))
	assert.Equal(t, []string{"resize", "resize", "begin", "write", "draw:cube", "end", "present"}, r.calls)
}

func TestMinimizedTimeDoesNotMoveCamera(t *testing.T) {
	a, _, r := newTestApp(t)
	ctrl := a.Camera().Controller()
	start := ctrl.Position()

	require.NoError(t, a.Frame(time.Unix(0, 0)))
	require.NoError(t, a.HandleEvents([]window.Event{
		{Kind: window.EventKey, KeyCode: common.KeyW, Pressed: true},
		{Kind: window.EventResize, Width: 0, Height: 0},
	}))
	require.NoError(t, a.Frame(time.Unix(5, 0)))
	r.width, r.height = 800, 600
	require.NoError(t, a.Frame(time.Unix(10, 0)))

	assert.Equal(t, start, ctrl.Position())
}

func TestHandleEventsKeys(t *testing.T) {
	a, _, _ := newTestApp(t)

	require.NoError(t, a.HandleEvents([]window.Event{
		{Kind: window.EventKey, KeyCode: common.KeyW, Pressed: true},
		{Kind: window.EventKey, KeyCode: common.KeyA, Pressed: true},
		{Kind: window.EventKey, KeyCode: common.KeyW, Pressed: false},
	}))
	assert.Equal(t, []uint32{common.KeyA}, a.Input().Held())
}

func TestRunStopsOnClose(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600, running: true}
	w.pending = [][]window.Event{nil, nil, {{Kind: window.EventClose}}}
	r := newFakeRenderer(800, 600)

	now := time.Unix(0, 0)
	a, err := NewApp(w, r, WithPipeline(newTestPipeline(t)), WithClock(func() time.Time {
		now = now.Add(time.Second / 60)
		return now
	}))
	require.NoError(t, err)

	require.NoError(t, a.Run())
	assert.Equal(t, 3, w.pollCount)
	// two frames ran before the close event arrived
	assert.Len(t, r.uploads, 2)
}

func TestRunStopsWhenWindowStops(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600, running: true, closeAfterPolls: 1}
	r := newFakeRenderer(800, 600)
	a, err := NewApp(w, r, WithPipeline(newTestPipeline(t)))
	require.NoError(t, err)

	require.NoError(t, a.Run())
	assert.Equal(t, 1, w.pollCount)
	assert.Len(t, r.uploads, 1)
}

func TestProfilerTicksEachFrame(t *testing.T) {
	var lines []string
	p := profiler.NewProfiler(profiler.WithUpdateInterval(time.Second), profiler.WithLogFunc(func(format string, args ...any) {
		lines = append(lines, format)
	}))
	a, _, _ := newTestApp(t, WithProfiler(p))

	start := time.Unix(0, 0)
	for i := 0; i <= 4; i++ {
		require.NoError(t, a.Frame(start.Add(time.Duration(i)*500*time.Millisecond)))
	}
	assert.Len(t, lines, 2)
}
