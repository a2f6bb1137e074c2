package camera

import "github.com/Carmen-Shannon/wirecube/common"

// KeySet reports whether a key is currently held.
// Key codes follow the common.Key* constants.
type KeySet interface {
	IsPressed(code uint32) bool
}

// CameraController defines the interface for the first-person camera controller.
// Controllers own positional state (position, direction). Camera reads from the controller
// and computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec3: world-space camera position
	Position() common.Vec3

	// Direction returns the current look direction. It is never normalized by the controller.
	//
	// Returns:
	//   - common.Vec3: the look direction
	Direction() common.Vec3

	// Target returns the look-at point, position + direction.
	//
	// Returns:
	//   - common.Vec3: world-space target position
	Target() common.Vec3

	// Speed returns the movement speed in world units per second.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - pos: world-space coordinates
	SetPosition(pos common.Vec3)

	// SetDirection sets the look direction directly. The direction must be non-zero.
	//
	// Parameters:
	//   - dir: the new look direction
	SetDirection(dir common.Vec3)

	// MoveDirection sums the movement contributions of the held WASD keys without normalizing.
	// W adds the direction, S subtracts it, A adds (-dir.z, 0, dir.x) and D adds (dir.z, 0, -dir.x).
	//
	// Parameters:
	//   - keys: the currently held keys
	//
	// Returns:
	//   - common.Vec3: the unnormalized movement vector
	MoveDirection(keys KeySet) common.Vec3

	// Update moves the camera along the normalized MoveDirection by speed * deltaTime.
	// Nothing happens when no key contributes.
	//
	// Parameters:
	//   - keys: the currently held keys
	//   - deltaTime: seconds elapsed since the previous frame
	Update(keys KeySet, deltaTime float32)

	// ApplyLook rotates the direction by a yaw about world +Y of -sensitivity*dx,
	// followed by a pitch about world +X of -sensitivity*dy.
	//
	// Parameters:
	//   - dx, dy: cursor offset from the window center in pixels
	//   - sensitivity: radians per pixel
	ApplyLook(dx, dy, sensitivity float32)
}

type firstPersonControllerImpl struct {
	position  common.Vec3
	direction common.Vec3
	speed     float32
}

// Compile-time interface compliance check
var _ CameraController = &firstPersonControllerImpl{}

var (
	worldUp    = common.Vec3{0, 1, 0}
	worldRight = common.Vec3{1, 0, 0}
)

// NewCameraController creates a first-person controller at (0, 0, -2) looking down +Z
// with a movement speed of 2 units per second.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &firstPersonControllerImpl{
		position:  common.Vec3{0, 0, -2},
		direction: common.Vec3{0, 0, 1},
		speed:     2.0,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *firstPersonControllerImpl) Position() common.Vec3 {
	return cc.position
}

func (cc *firstPersonControllerImpl) Direction() common.Vec3 {
	return cc.direction
}

func (cc *firstPersonControllerImpl) Target() common.Vec3 {
	return cc.position.Add(cc.direction)
}

func (cc *firstPersonControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *firstPersonControllerImpl) SetPosition(pos common.Vec3) {
	cc.position = pos
}

func (cc *firstPersonControllerImpl) SetDirection(dir common.Vec3) {
	cc.direction = dir
}

func (cc *firstPersonControllerImpl) MoveDirection(keys KeySet) common.Vec3 {
	d := cc.direction
	var move common.Vec3
	if keys.IsPressed(common.KeyW) {
		move = move.Add(d)
	}
	if keys.IsPressed(common.KeyS) {
		move = move.Sub(d)
	}
	if keys.IsPressed(common.KeyA) {
		move = move.Add(common.Vec3{-d[2], 0, d[0]})
	}
	if keys.IsPressed(common.KeyD) {
		move = move.Add(common.Vec3{d[2], 0, -d[0]})
	}
	return move
}

func (cc *firstPersonControllerImpl) Update(keys KeySet, deltaTime float32) {
	move := cc.MoveDirection(keys)
	if move.IsZero() {
		return
	}
	cc.position = cc.position.Add(move.Normalize().Scale(cc.speed * deltaTime))
}

func (cc *firstPersonControllerImpl) ApplyLook(dx, dy, sensitivity float32) {
	if dx == 0 && dy == 0 {
		return
	}
	yaw := common.QuatFromAxisAngle(worldUp, -sensitivity*dx)
	pitch := common.QuatFromAxisAngle(worldRight, -sensitivity*dy)
	cc.direction = pitch.Mul(yaw).Rotate(cc.direction)
}
