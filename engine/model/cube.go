package model

// cubeVertices are the eight corners of a unit cube centred on the origin.
// Indices 0-3 form the front face at z = +0.5 and 4-7 the back face at z = -0.5.
var cubeVertices = []GPUVertex{
	// front face
	{Position: [3]float32{-0.5, -0.5, 0.5}},
	{Position: [3]float32{0.5, -0.5, 0.5}},
	{Position: [3]float32{0.5, 0.5, 0.5}},
	{Position: [3]float32{-0.5, 0.5, 0.5}},
	// back face
	{Position: [3]float32{-0.5, -0.5, -0.5}},
	{Position: [3]float32{0.5, -0.5, -0.5}},
	{Position: [3]float32{0.5, 0.5, -0.5}},
	{Position: [3]float32{-0.5, 0.5, -0.5}},
}

// cubeEdgeIndices lists the 12 cube edges as line-list index pairs.
var cubeEdgeIndices = []uint16{
	// front face
	0, 1, 1, 2, 2, 3, 3, 0,
	// back face
	4, 5, 5, 6, 6, 7, 7, 4,
	// connecting edges
	0, 4, 1, 5, 2, 6, 3, 7,
}

// NewCube creates the wireframe cube Model.
//
// Returns:
//   - Model: a model holding its own copy of the cube geometry
func NewCube() Model {
	return NewModel(
		WithName("cube"),
		WithVertices(cubeVertices),
		WithIndices(cubeEdgeIndices),
	)
}
