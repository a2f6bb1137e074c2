package model

import (
	"encoding/binary"
	"slices"

	"github.com/Carmen-Shannon/wirecube/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name         string
	vertices     []GPUVertex
	indices      []uint16
	meshProvider bind_group_provider.BindGroupProvider
}

// Model defines the interface for a static line-list mesh.
// A Model holds its vertex and index data on the CPU and, once uploaded by the
// renderer, the BindGroupProvider owning the GPU vertex and index buffers.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the vertex positions.
	//
	// Returns:
	//   - []GPUVertex: the vertices
	Vertices() []GPUVertex

	// Indices retrieves the edge index list, two indices per line segment.
	//
	// Returns:
	//   - []uint16: the indices
	Indices() []uint16

	// VertexData retrieves the vertex buffer contents ready for GPU upload.
	//
	// Returns:
	//   - []byte: tightly packed little-endian vertex data
	VertexData() []byte

	// IndexData retrieves the index buffer contents ready for GPU upload.
	// The length is padded to a multiple of 4 bytes as required by buffer writes.
	//
	// Returns:
	//   - []byte: little-endian uint16 index data
	IndexData() []byte

	// IndexCount retrieves the number of indices to draw.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// MeshProvider retrieves the bind group provider that owns the GPU mesh buffers.
	// Returns nil until SetMeshProvider is called.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider or nil
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider sets the bind group provider that owns the GPU mesh buffers.
	//
	// Parameters:
	//   - provider: the mesh provider
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return slices.Clone(m.vertices)
}

func (m *model) Indices() []uint16 {
	return slices.Clone(m.indices)
}

func (m *model) VertexData() []byte {
	buf := make([]byte, 0, len(m.vertices)*gpuVertexSize)
	for i := range m.vertices {
		buf = append(buf, m.vertices[i].Marshal()...)
	}
	return buf
}

func (m *model) IndexData() []byte {
	size := len(m.indices) * 2
	buf := make([]byte, (size+3)&^3)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}
