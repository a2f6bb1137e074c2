package model

import "slices"

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertex positions of the Model.
// The Model keeps a copy of the slice.
//
// Parameters:
//   - vertices: the vertices to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = slices.Clone(vertices)
	}
}

// WithIndices is an option builder that sets the line-list indices of the Model.
// The Model keeps a copy of the slice.
//
// Parameters:
//   - indices: the indices to set, two per segment
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint16) ModelBuilderOption {
	return func(m *model) {
		m.indices = slices.Clone(indices)
	}
}
