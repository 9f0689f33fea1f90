// Package math provides interpolation primitives for animated model values.
// Vector and quaternion types come from mgl32.
package math

import "github.com/go-gl/mathgl/mgl32"

// BezierWeights returns the cubic Bernstein coefficients for factor f:
// (1-f)^3, 3f(1-f)^2, 3f^2(1-f), f^3.
func BezierWeights(f float32) [4]float32 {
	f2 := f * f
	inv := 1 - f
	inv2 := inv * inv

	return [4]float32{
		inv2 * inv,
		3 * f * inv2,
		3 * f2 * inv,
		f2 * f,
	}
}

// HermiteWeights returns the cubic Hermite coefficients for factor f:
// 2f^3-3f^2+1, f^3-2f^2+f, f^3-f^2, -2f^3+3f^2.
func HermiteWeights(f float32) [4]float32 {
	f2 := f * f

	return [4]float32{
		f2*(2*f-3) + 1,
		f2*(f-2) + f,
		f2 * (f - 1),
		f2 * (3 - 2*f),
	}
}

// Lerp blends two scalars: a*(1-f) + b*f.
func Lerp(a, b, f float32) float32 {
	return a*(1-f) + b*f
}

// LerpVec2 blends two 2D vectors component-wise.
func LerpVec2(a, b mgl32.Vec2, f float32) mgl32.Vec2 {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// LerpVec3 blends two 3D vectors component-wise.
func LerpVec3(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Mul(1 - f).Add(b.Mul(f))
}

// Cubic combines four scalars with the given weights.
func Cubic(w [4]float32, p0, c0, c1, p1 float32) float32 {
	return p0*w[0] + c0*w[1] + c1*w[2] + p1*w[3]
}

// CubicVec2 combines four 2D vectors with the given weights.
func CubicVec2(w [4]float32, p0, c0, c1, p1 mgl32.Vec2) mgl32.Vec2 {
	return p0.Mul(w[0]).Add(c0.Mul(w[1])).Add(c1.Mul(w[2])).Add(p1.Mul(w[3]))
}

// CubicVec3 combines four 3D vectors with the given weights.
func CubicVec3(w [4]float32, p0, c0, c1, p1 mgl32.Vec3) mgl32.Vec3 {
	return p0.Mul(w[0]).Add(c0.Mul(w[1])).Add(c1.Mul(w[2])).Add(p1.Mul(w[3]))
}
