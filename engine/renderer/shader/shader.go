package shader

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader module provides.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// String returns the WGSL stage attribute name for the shader type.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

// shader is the implementation of the Shader interface.
// It holds the source and the layout metadata reflected from it.
type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	entryPoint                 string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              []wgpu.VertexBufferLayout
}

// Shader defines the interface for a loaded and parsed WGSL shader. It exposes the shader's
// unique key, source code, entry point, bind group layout descriptors and vertex buffer layouts
// needed for pipeline creation and resource wiring.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used as the GPU module label.
	//
	// Returns:
	//   - string: the shader key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source
	Source() string

	// ShaderType returns the stage of the shader.
	//
	// Returns:
	//   - ShaderType: vertex or fragment
	ShaderType() ShaderType

	// EntryPoint returns the entry point function name for the shader's stage.
	//
	// Returns:
	//   - string: the entry point name
	EntryPoint() string

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors keyed by group.
	// These are the CPU-side descriptors extracted from the shader source which are used
	// by the renderer to create the wgpu.BindGroupLayout GPU objects.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the variable name declared at a group and binding.
	//
	// Parameters:
	//   - group: the group index
	//   - binding: the binding index
	//
	// Returns:
	//   - string: the variable name, or empty string if not declared
	BindGroupVarName(group, binding int) string

	// VertexLayouts retrieves the vertex buffer layouts, one per vertex input struct.
	// Always empty for fragment shaders.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the layouts in buffer slot order
	VertexLayouts() []wgpu.VertexBufferLayout

	// Module returns a wgpu.ShaderModuleDescriptor for creating the GPU shader module.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the module descriptor
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader parses WGSL source for the given stage.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - shaderType: the stage the source provides
//   - source: the WGSL source code
//
// Returns:
//   - Shader: the parsed shader
//   - error: error if the source has no entry point for the stage or declares an unsupported layout
func NewShader(key string, shaderType ShaderType, source string) (Shader, error) {
	if source == "" {
		return nil, errors.New("shader: " + key + " has empty source")
	}
	s := &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
	}

	cleaned := stripComments(source)
	s.entryPoint = parseEntryPoint(cleaned, shaderType)
	if s.entryPoint == "" {
		return nil, fmt.Errorf("shader: %s has no @%s entry point", key, shaderType)
	}

	structs := parseStructBlocks(cleaned)
	var visibility wgpu.ShaderStage
	switch shaderType {
	case ShaderTypeVertex:
		visibility = wgpu.ShaderStageVertex
		vertexLayouts, err := parseVertexLayouts(structs)
		if err != nil {
			return nil, fmt.Errorf("shader: %s: %w", key, err)
		}
		s.vertexLayouts = vertexLayouts
	case ShaderTypeFragment:
		visibility = wgpu.ShaderStageFragment
	}

	var err error
	s.bindGroupLayoutDescriptors, s.bindingVarNames, err = parseBindGroupLayouts(cleaned, structs, visibility)
	if err != nil {
		return nil, fmt.Errorf("shader: %s: %w", key, err)
	}
	return s, nil
}

// LoadShader reads WGSL source from a file system and parses it with NewShader.
// Pass an embed.FS for compiled-in shaders or os.DirFS for files on disk.
//
// Parameters:
//   - fsys: the file system to read from
//   - key: the unique identifier for the shader
//   - shaderType: the stage the source provides
//   - path: the slash-separated path within fsys
//
// Returns:
//   - Shader: the parsed shader
//   - error: error if the file cannot be read or parsed
func LoadShader(fsys fs.FS, key string, shaderType ShaderType, path string) (Shader, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to read source file %q: %w", path, err)
	}
	return NewShader(key, shaderType, string(data))
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	return s.bindingVarNames[group][binding]
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
}
