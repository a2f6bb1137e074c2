package camera

import "github.com/Carmen-Shannon/wirecube/common"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*firstPersonControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - pos: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(pos common.Vec3) CameraControllerOption {
	return func(cc *firstPersonControllerImpl) {
		cc.position = pos
	}
}

// WithDirection sets the initial look direction. A zero vector is ignored.
//
// Parameters:
//   - dir: the look direction
//
// Returns:
//   - CameraControllerOption: functional option to set the direction
func WithDirection(dir common.Vec3) CameraControllerOption {
	return func(cc *firstPersonControllerImpl) {
		if !dir.IsZero() {
			cc.direction = dir
		}
	}
}

// WithSpeed sets the movement speed in world units per second.
//
// Parameters:
//   - speed: movement speed
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *firstPersonControllerImpl) {
		cc.speed = speed
	}
}
