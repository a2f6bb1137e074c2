package input

import (
	"testing"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/stretchr/testify/assert"
)

func TestStateOnKey(t *testing.T) {
	s := NewState()
	assert.False(t, s.IsPressed(common.KeyW))

	s.OnKey(common.KeyW, true)
	s.OnKey(common.KeyW, true) // repeat
	s.OnKey(common.KeyD, true)
	assert.True(t, s.IsPressed(common.KeyW))
	assert.Equal(t, []uint32{common.KeyD, common.KeyW}, s.Held())

	s.OnKey(common.KeyW, false)
	assert.False(t, s.IsPressed(common.KeyW))
	assert.Equal(t, []uint32{common.KeyD}, s.Held())

	s.OnKey(common.KeyA, false) // release without press
	assert.Equal(t, []uint32{common.KeyD}, s.Held())

	s.Reset()
	assert.Empty(t, s.Held())
}

func TestMouseDelta(t *testing.T) {
	tests := []struct {
		name           string
		x, y           float64
		width, height  int
		wantDx, wantDy float64
	}{
		{"centered cursor", 400, 300, 800, 600, 0, 0},
		{"right and down", 410, 295, 800, 600, 10, -5},
		{"odd size", 0, 0, 801, 601, -400.5, -300.5},
		{"after resize", 400, 300, 1024, 768, -112, -84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := MouseDelta(tt.x, tt.y, tt.width, tt.height)
			assert.Equal(t, tt.wantDx, dx)
			assert.Equal(t, tt.wantDy, dy)
		})
	}
}

func TestCenter(t *testing.T) {
	cx, cy := Center(800, 600)
	assert.Equal(t, 400.0, cx)
	assert.Equal(t, 300.0, cy)
}
