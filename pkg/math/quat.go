package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SlerpThreshold is the dot product above which two quaternions are treated
// as parallel and blended linearly instead of spherically.
const SlerpThreshold = 0.9995

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() mgl32.Quat {
	return mgl32.QuatIdent()
}

// QuatFromXYZW builds a quaternion from components stored in X, Y, Z, W order,
// which is how model files store rotations.
func QuatFromXYZW(v [4]float32) mgl32.Quat {
	return mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
}

// QuatToXYZW is the inverse of QuatFromXYZW.
func QuatToXYZW(q mgl32.Quat) [4]float32 {
	return [4]float32{q.V[0], q.V[1], q.V[2], q.W}
}

// Normalize returns q scaled to unit length.
// A zero quaternion normalizes to identity.
func Normalize(q mgl32.Quat) mgl32.Quat {
	length := float32(math.Sqrt(float64(q.Dot(q))))
	if length < 0.0001 {
		return QuatIdentity()
	}
	return q.Scale(1 / length)
}

// Slerp performs spherical linear interpolation between two quaternions.
// When invertIfNeeded is set and the quaternions lie in opposite hemispheres,
// q2 is negated so the rotation takes the shorter path.
// The result is always renormalized.
func Slerp(q1, q2 mgl32.Quat, f float32, invertIfNeeded bool) mgl32.Quat {
	inv := 1 - f
	dot := q1.Dot(q2)

	if invertIfNeeded && dot < 0 {
		dot = -dot
		q2 = q2.Scale(-1)
	}

	if dot > -SlerpThreshold && dot < SlerpThreshold {
		angle := math.Acos(float64(dot))
		scale := 1 / math.Sin(angle)
		s1 := float32(scale * math.Sin(angle*float64(inv)))
		s2 := float32(scale * math.Sin(angle*float64(f)))
		return Normalize(q1.Scale(s1).Add(q2.Scale(s2)))
	}

	// Nearly parallel: fall back to a linear blend
	return Normalize(q1.Scale(inv).Add(q2.Scale(f)))
}

// SlerpBezier evaluates a cubic Bezier curve on the unit sphere using
// De Casteljau's construction with nested SLERPs.
func SlerpBezier(p0, c0, c1, p1 mgl32.Quat, f float32) mgl32.Quat {
	a := Slerp(p0, c0, f, true)
	b := Slerp(c0, c1, f, true)
	c := Slerp(c1, p1, f, true)

	ab := Slerp(a, b, f, true)
	bc := Slerp(b, c, f, true)

	return Slerp(ab, bc, f, true)
}

// SlerpHermite evaluates a Hermite-style curve on the unit sphere:
// the value arc and the tangent arc are blended by 2f(1-f).
func SlerpHermite(p0, t0, t1, p1 mgl32.Quat, f float32) mgl32.Quat {
	values := Slerp(p0, p1, f, true)
	tangents := Slerp(t0, t1, f, true)

	return Slerp(values, tangents, 2*f*(1-f), true)
}

// QuatApproxEqual reports whether two quaternions describe the same rotation
// within epsilon. q and -q are considered equal.
func QuatApproxEqual(a, b mgl32.Quat, epsilon float32) bool {
	return quatNear(a, b, epsilon) || quatNear(a, b.Scale(-1), epsilon)
}
