package mdx

import (
	"fmt"
	"strings"
)

// Interpolation selects how a track blends between two keyframes.
type Interpolation int32

const (
	InterpolationNone    Interpolation = 0 // Step: hold the earlier value
	InterpolationLinear  Interpolation = 1
	InterpolationHermite Interpolation = 2
	InterpolationBezier  Interpolation = 3
)

// String returns a human-readable interpolation name.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNone:
		return "None"
	case InterpolationLinear:
		return "Linear"
	case InterpolationHermite:
		return "Hermite"
	case InterpolationBezier:
		return "Bezier"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(i))
	}
}

// HasTangents reports whether keyframes carry meaningful tangents.
func (i Interpolation) HasTangents() bool {
	return i == InterpolationHermite || i == InterpolationBezier
}

// ParseInterpolation parses a name produced by String (case-insensitive).
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "dontinterp":
		return InterpolationNone, nil
	case "linear":
		return InterpolationLinear, nil
	case "hermite":
		return InterpolationHermite, nil
	case "bezier":
		return InterpolationBezier, nil
	}
	return InterpolationNone, fmt.Errorf("unknown interpolation %q", s)
}

// TrackMode tells whether a track evaluates to a single value or to keyframes.
type TrackMode int

const (
	ModeStatic TrackMode = iota
	ModeAnimated
)

// String returns "Static" or "Animated".
func (m TrackMode) String() string {
	if m == ModeAnimated {
		return "Animated"
	}
	return "Static"
}
