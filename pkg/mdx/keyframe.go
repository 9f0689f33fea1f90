package mdx

// Keyframe is one sample of an animated value.
// Tangents only matter for Hermite and Bezier interpolation.
type Keyframe[T any] struct {
	Time       int
	Value      T
	InTangent  T
	OutTangent T
}

// NewKeyframe creates a keyframe without tangents.
func NewKeyframe[T any](time int, value T) Keyframe[T] {
	return Keyframe[T]{Time: time, Value: value}
}

// NewTangentKeyframe creates a keyframe with in and out tangents.
func NewTangentKeyframe[T any](time int, value, in, out T) Keyframe[T] {
	return Keyframe[T]{Time: time, Value: value, InTangent: in, OutTangent: out}
}
