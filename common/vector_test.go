package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d", i)
	}
}

func TestVec3(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3{0, 0, 1}, Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0}))
	assert.InDelta(t, 5, Vec3{3, 4, 0}.Length(), 1e-6)
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, a.IsZero())
}

func TestVec3Normalize(t *testing.T) {
	assertVecInDelta(t, Vec3{0.6, 0.8, 0}, Vec3{3, 4, 0}.Normalize())
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestQuatRotate(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
		in    Vec3
		want  Vec3
	}{
		{"zero angle", Vec3{0, 1, 0}, 0, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"quarter turn about Y", Vec3{0, 1, 0}, math32.Pi / 2, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"quarter turn about X", Vec3{1, 0, 0}, math32.Pi / 2, Vec3{0, 0, 1}, Vec3{0, -1, 0}},
		{"half turn about Z", Vec3{0, 0, 1}, math32.Pi, Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromAxisAngle(tt.axis, tt.angle)
			assertVecInDelta(t, tt.want, q.Rotate(tt.in))
		})
	}
}

func TestQuatMulOrder(t *testing.T) {
	yaw := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	pitch := QuatFromAxisAngle(Vec3{1, 0, 0}, math32.Pi/2)

	// pitch * yaw applies yaw first: +Z -> +X, and +X is unchanged by a pitch.
	assertVecInDelta(t, Vec3{1, 0, 0}, pitch.Mul(yaw).Rotate(Vec3{0, 0, 1}))
	// yaw * pitch applies pitch first: +Z -> -Y, and -Y is unchanged by a yaw.
	assertVecInDelta(t, Vec3{0, -1, 0}, yaw.Mul(pitch).Rotate(Vec3{0, 0, 1}))
}
