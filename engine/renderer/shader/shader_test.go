package shader

import (
	"testing"
	"testing/fstest"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `
struct Uniforms {
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;

/* the only vertex attribute
   is the position */
struct VertexInput {
    @location(0) position: vec3<f32>, // model space
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = uniforms.projection * uniforms.view * vec4<f32>(in.position, 1.0);
    return out;
}
`

const testFragmentSource = `
struct Uniforms {
    view: mat4x4<f32>,
    projection: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> uniforms: Uniforms;

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

func TestNewShaderVertex(t *testing.T) {
	s, err := NewShader("cube-vert", ShaderTypeVertex, testVertexSource)
	require.NoError(t, err)

	assert.Equal(t, "cube-vert", s.Key())
	assert.Equal(t, ShaderTypeVertex, s.ShaderType())
	assert.Equal(t, "vs_main", s.EntryPoint())

	layouts := s.VertexLayouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, uint64(12), layouts[0].ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeVertex, layouts[0].StepMode)
	assert.Equal(t, []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
	}, layouts[0].Attributes)

	desc, ok := s.BindGroupLayoutDescriptors()[0]
	require.True(t, ok)
	require.Len(t, desc.Entries, 1)
	entry := desc.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	assert.Equal(t, uint64(128), entry.Buffer.MinBindingSize)
	assert.Equal(t, "uniforms", s.BindGroupVarName(0, 0))
	assert.Empty(t, s.BindGroupVarName(1, 0))

	module := s.Module()
	assert.Equal(t, "cube-vert", module.Label)
	assert.Equal(t, testVertexSource, module.WGSLDescriptor.Code)
}

func TestNewShaderFragment(t *testing.T) {
	s, err := NewShader("cube-frag", ShaderTypeFragment, testFragmentSource)
	require.NoError(t, err)

	assert.Equal(t, "fs_main", s.EntryPoint())
	assert.Empty(t, s.VertexLayouts())
	entry := s.BindGroupLayoutDescriptors()[0].Entries[0]
	assert.Equal(t, wgpu.ShaderStageFragment, entry.Visibility)
	assert.Equal(t, uint64(128), entry.Buffer.MinBindingSize)
}

func TestNewShaderErrors(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		source     string
		wantErr    string
	}{
		{"empty source", ShaderTypeVertex, "", "empty source"},
		{"missing entry point", ShaderTypeFragment, testVertexSource, "no @fragment entry point"},
		{
			"entry point only in a comment",
			ShaderTypeVertex,
			"// @vertex fn vs_main() {}\n",
			"no @vertex entry point",
		},
		{
			"unsupported vertex type",
			ShaderTypeVertex,
			"struct V { @location(0) m: mat4x4<f32> }\n@vertex fn vs_main(v: V) -> @builtin(position) vec4<f32> { return vec4<f32>(); }",
			"unsupported vertex type",
		},
		{
			"texture binding",
			ShaderTypeFragment,
			"@group(0) @binding(1) var tex: texture_2d<f32>;\n@fragment fn fs_main() {}",
			"unsupported resource",
		},
		{
			"unknown uniform type",
			ShaderTypeFragment,
			"@group(0) @binding(0) var<uniform> u: Missing;\n@fragment fn fs_main() {}",
			"cannot resolve size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewShader("test", tt.shaderType, tt.source)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadShader(t *testing.T) {
	fsys := fstest.MapFS{
		"shaders/cube-frag.wgsl": {Data: []byte(testFragmentSource)},
	}

	s, err := LoadShader(fsys, "cube-frag", ShaderTypeFragment, "shaders/cube-frag.wgsl")
	require.NoError(t, err)
	assert.Equal(t, "fs_main", s.EntryPoint())

	_, err = LoadShader(fsys, "missing", ShaderTypeVertex, "shaders/missing.wgsl")
	assert.ErrorContains(t, err, "failed to read source file")
}

func TestShaderTypeString(t *testing.T) {
	assert.Equal(t, "vertex", ShaderTypeVertex.String())
	assert.Equal(t, "fragment", ShaderTypeFragment.String())
	assert.Equal(t, "ShaderType(7)", ShaderType(7).String())
}
