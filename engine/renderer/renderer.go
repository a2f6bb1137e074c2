package renderer

import (
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/wirecube/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// SurfaceTarget is the window-side source of a drawable surface.
// window.Window satisfies it.
type SurfaceTarget interface {
	// SurfaceDescriptor returns the platform-specific descriptor for WebGPU surface creation.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
}

// renderer is the implementation of the Renderer interface.
// A renderer is owned by a single thread; none of its methods lock.
type renderer struct {
	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	width, height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	surfaceFormat        wgpu.TextureFormat
	clearColor           wgpu.Color
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// The Renderer manages a cache of pipelines and creates the GPU resources described by
// BindGroupProviders. Every GPU object it creates lives until Release; only the surface
// configuration is replaced on Resize.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the Pipeline associated with the key, or nil if not found
	Pipeline(key string) pipeline.Pipeline

	// RegisterPipelines registers one or more pipelines by creating the corresponding GPU
	// render pipeline objects via the backend, then caching them by PipelineKey.
	// Pipelines whose keys are already registered are skipped to avoid duplicate GPU resource creation.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize reconfigures the surface for a new framebuffer size.
	// A zero or negative dimension marks the surface as unavailable and skips configuration;
	// BeginFrame must not be called until a non-zero size arrives.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if surface configuration fails
	Resize(width, height int) error

	// SurfaceSize returns the size the surface is currently configured with, or zero when unavailable.
	//
	// Returns:
	//   - width, height: the configured surface size in pixels
	SurfaceSize() (width, height int)

	// SurfaceFormat returns the texture format the surface is configured with.
	//
	// Returns:
	//   - wgpu.TextureFormat: the surface format
	SurfaceFormat() wgpu.TextureFormat

	// InitMeshBuffers creates GPU vertex and index buffers from raw byte data and stores them
	// on the given BindGroupProvider for later use in draw calls.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - indexData: the raw index data bytes to upload to the GPU
	//   - indexCount: the number of indices, used for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates GPU buffers and a bind group from a layout descriptor and stores them
	// on the given BindGroupProvider. Each buffer is sized to its entry's MinBindingSize.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created bind group on
	//   - descriptor: the layout descriptor defining the bind group entries
	//
	// Returns:
	//   - error: an error if bind group creation fails
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// WriteBuffers queues all staged buffer writes on the GPU queue.
	// Each BufferWrite targets a specific buffer on a BindGroupProvider at a given binding and offset.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	//
	// Returns:
	//   - error: an error if a write targets a binding with no buffer
	WriteBuffers(writes []bind_group_provider.BufferWrite) error

	// BeginFrame acquires the swapchain texture and begins the main render pass, cleared to the clear color.
	// Must be paired with EndFrame after all DrawCall invocations within a single frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes a single indexed draw of every index in the mesh within the current render pass.
	// Bind groups are set in slice order starting at group 0.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached render Pipeline to use
	//   - meshProvider: the BindGroupProvider holding vertex and index buffers
	//   - bindGroups: a slice of BindGroupProviders whose BindGroups will be set on the render pass
	//
	// Returns:
	//   - error: an error if the pipeline is not found
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface, call Present() after EndFrame to display the frame.
	//
	// Returns:
	//   - error: an error if the command buffer could not be finished
	EndFrame() error

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// Release releases every cached pipeline and the backend's GPU objects.
	// BindGroupProviders are owned by the caller and released separately.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer, acquiring the adapter and device once and configuring the
// surface to the target's current framebuffer size.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - target: the drawable surface source, typically a window.Window
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new Renderer configured with the specified backend and options
//   - error: error if the adapter, device or surface could not be acquired
func NewRenderer(backendType RendererBackendType, target SurfaceTarget, options ...RendererBuilderOption) (Renderer, error) {
	if target == nil {
		return nil, errors.New("renderer: a surface target is required")
	}
	r := &renderer{
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
		presentMode:   PresentModeVSync,
		surfaceFormat: wgpu.TextureFormatBGRA8UnormSrgb,
		clearColor:    wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	if r.backend == nil {
		switch backendType {
		case BackendTypeWGPU:
			b, err := newWGPURendererBackend(target.SurfaceDescriptor(), r.forceFallbackAdapter, r.surfaceFormat, r.clearColor)
			if err != nil {
				return nil, fmt.Errorf("renderer: %w", err)
			}
			r.backend = b
		default:
			return nil, fmt.Errorf("renderer: unknown backend type %d", backendType)
		}
	}
	r.backend.SetPresentMode(r.presentMode)

	width, height := target.FramebufferSize()
	if err := r.Resize(width, height); err != nil {
		r.backend.Release()
		return nil, err
	}
	log.Printf("[Renderer] surface %dx%d, format %v, present mode %s", width, height, r.backend.SurfaceFormat(), r.presentMode)
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		r.width, r.height = 0, 0
		return nil
	}
	if width == r.width && height == r.height {
		return nil
	}
	if err := r.backend.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("renderer: failed to configure surface %dx%d: %w", width, height, err)
	}
	r.width, r.height = width, height
	return nil
}

func (r *renderer) SurfaceSize() (width, height int) {
	return r.width, r.height
}

func (r *renderer) SurfaceFormat() wgpu.TextureFormat {
	return r.backend.SurfaceFormat()
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	return r.pipelineCache[key]
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("renderer: failed to register pipeline %q: %w", key, err)
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	return r.backend.InitBindGroup(provider, descriptor)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) error {
	for _, w := range writes {
		if w.Provider == nil || w.Provider.Buffer(w.Binding) == nil {
			return fmt.Errorf("renderer: no buffer at binding %d to write", w.Binding)
		}
	}
	r.backend.WriteBuffers(writes)
	return nil
}

func (r *renderer) BeginFrame() error {
	if r.width == 0 || r.height == 0 {
		return errors.New("renderer: surface is not configured")
	}
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, bindGroups []bind_group_provider.BindGroupProvider) error {
	p, exists := r.pipelineCache[pipelineKey]
	if !exists {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}

	r.backend.DrawCall(p, meshProvider, bindGroups)
	return nil
}

func (r *renderer) EndFrame() error {
	return r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) Release() {
	for key, p := range r.pipelineCache {
		p.Release()
		delete(r.pipelineCache, key)
	}
	r.backend.Release()
}
