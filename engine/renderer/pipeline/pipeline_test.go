package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vertexSource = `
struct Uniforms { view: mat4x4<f32>, projection: mat4x4<f32> }
@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(1) @binding(0) var<storage, read> offsets: array<vec4<f32>>;
struct VertexInput { @location(0) position: vec3<f32> }
@vertex
fn vs_main(in: VertexInput) -> @builtin(position) vec4<f32> {
    return uniforms.projection * uniforms.view * vec4<f32>(in.position, 1.0);
}
`

const fragmentSource = `
struct Uniforms { view: mat4x4<f32>, projection: mat4x4<f32> }
@group(0) @binding(0) var<uniform> uniforms: Uniforms;
@group(0) @binding(1) var<uniform> tint: vec4<f32>;
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return tint;
}
`

func newShaders(t *testing.T) (shader.Shader, shader.Shader) {
	t.Helper()
	vs, err := shader.NewShader("vert", shader.ShaderTypeVertex, vertexSource)
	require.NoError(t, err)
	fs, err := shader.NewShader("frag", shader.ShaderTypeFragment, fragmentSource)
	require.NoError(t, err)
	return vs, fs
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("default")

	assert.Equal(t, "default", p.PipelineKey())
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, p.Topology())
	assert.Equal(t, wgpu.CullModeNone, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskAll, p.WriteMask())
	assert.False(t, p.BlendEnabled())
	assert.NotNil(t, p.BlendState())
	assert.Nil(t, p.RenderPipeline())
	assert.Nil(t, p.Shader(shader.ShaderTypeVertex))
	assert.Empty(t, p.BindGroupLayoutDescriptors())
}

func TestPipelineOptions(t *testing.T) {
	vs, fs := newShaders(t)
	blend := &wgpu.BlendState{}

	p := NewPipeline("cube",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithWireframe(),
		WithWriteMask(wgpu.ColorWriteMaskRed),
		WithBlendEnabled(true),
		WithBlendState(blend),
	)

	assert.Same(t, vs, p.Shader(shader.ShaderTypeVertex))
	assert.Same(t, fs, p.Shader(shader.ShaderTypeFragment))
	assert.Equal(t, wgpu.PrimitiveTopologyLineList, p.Topology())
	assert.Equal(t, wgpu.CullModeBack, p.CullMode())
	assert.Equal(t, wgpu.FrontFaceCCW, p.FrontFace())
	assert.Equal(t, wgpu.ColorWriteMaskRed, p.WriteMask())
	assert.True(t, p.BlendEnabled())
	assert.Same(t, blend, p.BlendState())

	p = NewPipeline("cw", WithCullMode(wgpu.CullModeFront), WithTopology(wgpu.PrimitiveTopologyPointList), WithFrontFace(wgpu.FrontFaceCW))
	assert.Equal(t, wgpu.CullModeFront, p.CullMode())
	assert.Equal(t, wgpu.PrimitiveTopologyPointList, p.Topology())
	assert.Equal(t, wgpu.FrontFaceCW, p.FrontFace())
}

func TestBindGroupLayoutDescriptorsMerge(t *testing.T) {
	vs, fs := newShaders(t)
	p := NewPipeline("cube", WithVertexShader(vs), WithFragmentShader(fs))

	merged := p.BindGroupLayoutDescriptors()
	require.Len(t, merged, 2)

	group0 := merged[0].Entries
	require.Len(t, group0, 2)
	assert.Equal(t, uint32(0), group0[0].Binding)
	assert.Equal(t, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment, group0[0].Visibility)
	assert.Equal(t, uint64(128), group0[0].Buffer.MinBindingSize)
	assert.Equal(t, uint32(1), group0[1].Binding)
	assert.Equal(t, wgpu.ShaderStageFragment, group0[1].Visibility)

	group1 := merged[1].Entries
	require.Len(t, group1, 1)
	assert.Equal(t, wgpu.ShaderStageVertex, group1[0].Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeReadOnlyStorage, group1[0].Buffer.Type)

	// merging must not write through to the shader's own descriptors
	assert.Equal(t, wgpu.ShaderStageVertex, vs.BindGroupLayoutDescriptors()[0].Entries[0].Visibility)
}

func TestReleaseWithoutRenderPipeline(t *testing.T) {
	p := NewPipeline("unregistered")
	assert.NotPanics(t, p.Release)
	assert.Nil(t, p.RenderPipeline())
}
