// Package mdx provides the editable object core for skeletal models: animated
// value tracks, time addressing, deferred reference resolution and reversible
// edit commands.
package mdx

import "github.com/pkg/errors"

// Error kinds. Callers test for them with errors.Is.
var (
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrEmptyTrack           = errors.New("animated track has no keyframes")
	ErrDanglingReference    = errors.New("dangling reference")
	ErrInvalidFieldLocator  = errors.New("invalid field locator")
	ErrDivergentTimeAddress = errors.New("time must reference exactly one of sequence or global sequence")
	ErrStaticValueOnly      = errors.New("track is animated; a time is required")
	ErrAttacherSpent        = errors.New("attacher already ran")
	ErrForeignObject        = errors.New("object does not belong to the target collection")
	ErrDuplicateObject      = errors.New("object already in collection")
)
