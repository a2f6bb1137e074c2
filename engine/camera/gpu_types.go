package camera

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUUniforms is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL Uniforms struct declared by the cube shaders:
//
//	struct Uniforms {
//	    view: mat4x4<f32>,
//	    projection: mat4x4<f32>,
//	}
//
// Size: 128 bytes.
type GPUUniforms struct {
	View       [16]float32 // offset  0: view matrix (mat4x4<f32>)
	Projection [16]float32 // offset 64: projection matrix (mat4x4<f32>)
}

// Size returns the size of the GPUUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	return buf
}
