package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestVec3ApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl32.Vec3
		want bool
	}{
		{"exact", mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, true},
		{"rounding next to zero", mgl32.Vec3{-1.1920929e-06, 10.000001, 0}, mgl32.Vec3{0, 10, 0}, true},
		{"outside tolerance", mgl32.Vec3{0.01, 10, 0}, mgl32.Vec3{0, 10, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Vec3ApproxEqual(tt.a, tt.b, 1e-3); got != tt.want {
				t.Errorf("Vec3ApproxEqual(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestQuatApproxEqual_ZeroComponents(t *testing.T) {
	noisy := mgl32.Quat{W: 1, V: mgl32.Vec3{2e-6, -2e-6, 0}}
	if !QuatApproxEqual(noisy, QuatIdentity(), 1e-3) {
		t.Errorf("expected %v to match identity", noisy)
	}
	if !QuatApproxEqual(noisy.Scale(-1), QuatIdentity(), 1e-3) {
		t.Error("expected negated quaternion to match")
	}
	if QuatApproxEqual(mgl32.Quat{W: 0.9, V: mgl32.Vec3{0.1, 0, 0}}, QuatIdentity(), 1e-3) {
		t.Error("expected distinct rotations to differ")
	}
}
