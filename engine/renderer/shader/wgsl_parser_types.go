package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo holds the wgpu vertex format and byte size for a WGSL vertex attribute type
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout holds the byte size and alignment of a WGSL host-shareable type.
// Used to compute MinBindingSize for buffer bindings.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is a single struct member
type parsedField struct {
	name      string
	typeName  string
	location  int // -1 when the field has no @location attribute
	isBuiltin bool
}

// parsedStruct is a struct declaration and its members in declaration order
type parsedStruct struct {
	name   string
	fields []parsedField
}
