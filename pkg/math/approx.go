package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Near reports whether a and b differ by at most epsilon.
func Near(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) <= float64(epsilon)
}

// Vec3ApproxEqual compares component-wise with an absolute tolerance.
// mgl32's ApproxEqualThreshold squares the threshold when one side is zero,
// which is too strict for accumulated matrix error.
func Vec3ApproxEqual(a, b mgl32.Vec3, epsilon float32) bool {
	for i := range a {
		if !Near(a[i], b[i], epsilon) {
			return false
		}
	}
	return true
}

func quatNear(a, b mgl32.Quat, epsilon float32) bool {
	return Near(a.W, b.W, epsilon) && Vec3ApproxEqual(a.V, b.V, epsilon)
}
