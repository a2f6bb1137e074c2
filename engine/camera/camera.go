package camera

import (
	"github.com/Carmen-Shannon/wirecube/common"
)

type cameraImpl struct {
	up [3]float32

	fov  float32
	near float32
	far  float32

	controller CameraController
}

// Camera defines the interface for the camera system.
// The camera holds perspective settings and computes view/projection matrices
// from its attached CameraController on demand.
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Controller returns the attached CameraController.
	//
	// Returns:
	//   - CameraController: the attached controller
	Controller() CameraController

	// ViewMatrix returns the right-handed look-at matrix from the controller's position
	// towards position + direction, as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the perspective matrix for the given aspect ratio
	// as 16 floats (column-major), with depth in [0, 1].
	//
	// Parameters:
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix(aspect float32) [16]float32

	// Uniforms packs the current view and projection matrices for GPU upload.
	//
	// Parameters:
	//   - aspect: viewport width / height
	//
	// Returns:
	//   - GPUUniforms: the uniform block
	Uniforms(aspect float32) GPUUniforms
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 45 degree field of view, a near plane of 0.1
// and a far plane of 100. A default first-person controller is attached unless
// WithController is given.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:   [3]float32{0, 1, 0},
		fov:  common.DegreesToRadians(45),
		near: 0.1,
		far:  100.0,
	}
	for _, option := range options {
		option(c)
	}
	if c.controller == nil {
		c.controller = NewCameraController()
	}
	return c
}

func (c *cameraImpl) Up() (x, y, z float32) {
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	var view [16]float32
	common.LookAt(view[:], c.controller.Position(), c.controller.Target(), c.up)
	return view
}

func (c *cameraImpl) ProjectionMatrix(aspect float32) [16]float32 {
	var proj [16]float32
	common.Perspective(proj[:], c.fov, aspect, c.near, c.far)
	return proj
}

func (c *cameraImpl) Uniforms(aspect float32) GPUUniforms {
	return GPUUniforms{
		View:       c.ViewMatrix(),
		Projection: c.ProjectionMatrix(aspect),
	}
}
