package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option used to configure a BindGroupProvider during construction.
type BindGroupProviderOption func(*bindGroupProvider)

// WithBindGroupLayout sets a pre-created bind group layout for this provider.
// InitBindGroup reuses a layout that is already set instead of creating a new one.
//
// Parameters:
//   - bgl: the bind group layout to use for this provider
//
// Returns:
//   - BindGroupProviderOption: a function that sets the bind group layout for this provider
func WithBindGroupLayout(bgl *wgpu.BindGroupLayout) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.bindGroupLayout = bgl
	}
}

// WithIndexFormat overrides the index buffer element type. Defaults to wgpu.IndexFormatUint16.
//
// Parameters:
//   - format: the index format
//
// Returns:
//   - BindGroupProviderOption: a function that sets the index format for this provider
func WithIndexFormat(format wgpu.IndexFormat) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.indexFormat = format
	}
}
