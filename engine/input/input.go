// Package input tracks keyboard state between frames and derives the mouse-look
// delta from the cursor's offset to the window center.
package input

import "slices"

type stateImpl struct {
	held map[uint32]struct{}
}

// State is the set of currently held key codes.
// Key codes follow the common.Key* constants (GLFW key values).
type State interface {
	// OnKey records a key transition. Pressing an already held key, or releasing
	// a key that is not held, leaves the set unchanged.
	//
	// Parameters:
	//   - code: the key code
	//   - pressed: true for press or repeat, false for release
	OnKey(code uint32, pressed bool)

	// IsPressed reports whether the key is currently held.
	//
	// Parameters:
	//   - code: the key code
	//
	// Returns:
	//   - bool: true if held
	IsPressed(code uint32) bool

	// Held returns the held key codes in ascending order.
	//
	// Returns:
	//   - []uint32: the held keys
	Held() []uint32

	// Reset releases every key.
	Reset()
}

var _ State = &stateImpl{}

// NewState creates an empty input State.
//
// Returns:
//   - State: the new input state
func NewState() State {
	return &stateImpl{held: make(map[uint32]struct{})}
}

func (s *stateImpl) OnKey(code uint32, pressed bool) {
	if pressed {
		s.held[code] = struct{}{}
		return
	}
	delete(s.held, code)
}

func (s *stateImpl) IsPressed(code uint32) bool {
	_, ok := s.held[code]
	return ok
}

func (s *stateImpl) Held() []uint32 {
	keys := make([]uint32, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *stateImpl) Reset() {
	clear(s.held)
}

// Center returns the center of a window of the given size, in window coordinates.
//
// Parameters:
//   - width, height: the window size
//
// Returns:
//   - cx, cy: the center point
func Center(width, height int) (cx, cy float64) {
	return float64(width) / 2, float64(height) / 2
}

// MouseDelta returns the cursor's offset from the center of a window of the given size.
// The cursor is expected to have been re-centered after the previous frame, so the
// offset is the motion since then.
//
// Parameters:
//   - cursorX, cursorY: the cursor position in window coordinates
//   - width, height: the current window size
//
// Returns:
//   - dx, dy: the offset from the center, positive right and down
func MouseDelta(cursorX, cursorY float64, width, height int) (dx, dy float64) {
	cx, cy := Center(width, height)
	return cursorX - cx, cursorY - cy
}
