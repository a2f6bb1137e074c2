package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
// Defaults to PresentModeVSync.
//
// Parameters:
//   - mode: the PresentMode to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithSurfaceFormat sets the preferred surface texture format. Defaults to wgpu.TextureFormatBGRA8UnormSrgb.
// When the surface does not support the preferred format the first supported format is used instead.
//
// Parameters:
//   - format: the preferred texture format
//
// Returns:
//   - RendererBuilderOption: a function that applies the surface format option to a renderer
func WithSurfaceFormat(format wgpu.TextureFormat) RendererBuilderOption {
	return func(r *renderer) {
		r.surfaceFormat = format
	}
}

// WithClearColor sets the color the render pass clears to at the start of each frame. Defaults to opaque black.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear color option to a renderer
func WithClearColor(color wgpu.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = color
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// withBackend replaces the GPU backend, skipping adapter and device acquisition.
func withBackend(b RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = b
	}
}
