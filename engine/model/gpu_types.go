package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

const gpuVertexSize = 12

// GPUVertex is the GPU-aligned representation of a single wireframe vertex.
// Matches the WGSL vertex input `@location(0) position: vec3<f32>`.
// Size: 12 bytes, tightly packed.
type GPUVertex struct {
	Position [3]float32 // offset 0: vertex position in model space (12 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 12-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, gpuVertexSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	return buf
}
