package mdx

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/mdxcore/pkg/math"
)

// Animatable implements the four interpolation algorithms for one value type.
// Implementations are stateless; a track is given one at construction.
// f is the normalized position between from and to, in [0, 1).
type Animatable[T any] interface {
	None(from, to Keyframe[T], f float32) T
	Linear(from, to Keyframe[T], f float32) T
	Bezier(from, to Keyframe[T], f float32) T
	Hermite(from, to Keyframe[T], f float32) T
}

// Interpolate blends from and to at tick with the selected algorithm.
// Coincident keyframes yield from.Value instead of dividing by zero.
func Interpolate[T any](kind Animatable[T], typ Interpolation, tick int, from, to Keyframe[T]) T {
	if to.Time <= from.Time {
		return from.Value
	}
	f := float32(tick-from.Time) / float32(to.Time-from.Time)

	switch typ {
	case InterpolationLinear:
		return kind.Linear(from, to, f)
	case InterpolationBezier:
		return kind.Bezier(from, to, f)
	case InterpolationHermite:
		return kind.Hermite(from, to, f)
	default:
		return kind.None(from, to, f)
	}
}

// Float interpolates scalar values such as alpha or intensity.
type Float struct{}

func (Float) None(from, _ Keyframe[float32], _ float32) float32 { return from.Value }

func (Float) Linear(from, to Keyframe[float32], f float32) float32 {
	return math.Lerp(from.Value, to.Value, f)
}

func (Float) Bezier(from, to Keyframe[float32], f float32) float32 {
	return math.Cubic(math.BezierWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

func (Float) Hermite(from, to Keyframe[float32], f float32) float32 {
	return math.Cubic(math.HermiteWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

// Integer animates discrete identifiers (texture IDs).
// Blending IDs is meaningless, so every algorithm holds the earlier value.
type Integer struct{}

func (Integer) None(from, _ Keyframe[int], _ float32) int    { return from.Value }
func (Integer) Linear(from, _ Keyframe[int], _ float32) int  { return from.Value }
func (Integer) Bezier(from, _ Keyframe[int], _ float32) int  { return from.Value }
func (Integer) Hermite(from, _ Keyframe[int], _ float32) int { return from.Value }

// Vector2 interpolates 2D vectors component-wise.
type Vector2 struct{}

func (Vector2) None(from, _ Keyframe[mgl32.Vec2], _ float32) mgl32.Vec2 { return from.Value }

func (Vector2) Linear(from, to Keyframe[mgl32.Vec2], f float32) mgl32.Vec2 {
	return math.LerpVec2(from.Value, to.Value, f)
}

func (Vector2) Bezier(from, to Keyframe[mgl32.Vec2], f float32) mgl32.Vec2 {
	return math.CubicVec2(math.BezierWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

func (Vector2) Hermite(from, to Keyframe[mgl32.Vec2], f float32) mgl32.Vec2 {
	return math.CubicVec2(math.HermiteWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

// Vector3 interpolates 3D vectors (translation, scaling, color) component-wise.
type Vector3 struct{}

func (Vector3) None(from, _ Keyframe[mgl32.Vec3], _ float32) mgl32.Vec3 { return from.Value }

func (Vector3) Linear(from, to Keyframe[mgl32.Vec3], f float32) mgl32.Vec3 {
	return math.LerpVec3(from.Value, to.Value, f)
}

func (Vector3) Bezier(from, to Keyframe[mgl32.Vec3], f float32) mgl32.Vec3 {
	return math.CubicVec3(math.BezierWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

func (Vector3) Hermite(from, to Keyframe[mgl32.Vec3], f float32) mgl32.Vec3 {
	return math.CubicVec3(math.HermiteWeights(f), from.Value, from.OutTangent, to.InTangent, to.Value)
}

// Quaternion interpolates rotations with SLERP so results stay unit length
// and follow the shortest arc.
type Quaternion struct{}

func (Quaternion) None(from, _ Keyframe[mgl32.Quat], _ float32) mgl32.Quat { return from.Value }

func (Quaternion) Linear(from, to Keyframe[mgl32.Quat], f float32) mgl32.Quat {
	return math.Slerp(from.Value, to.Value, f, true)
}

func (Quaternion) Bezier(from, to Keyframe[mgl32.Quat], f float32) mgl32.Quat {
	return math.SlerpBezier(from.Value, from.OutTangent, to.InTangent, to.Value, f)
}

func (Quaternion) Hermite(from, to Keyframe[mgl32.Quat], f float32) mgl32.Quat {
	return math.SlerpHermite(from.Value, from.OutTangent, to.InTangent, to.Value, f)
}

var (
	_ Animatable[float32]    = Float{}
	_ Animatable[int]        = Integer{}
	_ Animatable[mgl32.Vec2] = Vector2{}
	_ Animatable[mgl32.Vec3] = Vector3{}
	_ Animatable[mgl32.Quat] = Quaternion{}
)
