package mdx

import (
	"sort"

	"github.com/pkg/errors"
)

// Clock supplies the time a track should be evaluated at. Implementations
// return sequence time unless the track runs on its own global sequence.
type Clock interface {
	TimeFor(gs *GlobalSequence) Time
}

// Track is one animatable property: either a single static value or a list
// of keyframes sorted by time.
type Track[T any] struct {
	kind          Animatable[T]
	keyframes     []Keyframe[T]
	animated      bool
	staticValue   T
	interpolation Interpolation

	// GlobalSequence, when set, makes the track loop on that global
	// sequence instead of the playing sequence.
	GlobalSequence Reference[*GlobalSequence]
}

// NewTrack creates a static track holding defaultValue.
func NewTrack[T any](kind Animatable[T], defaultValue T) *Track[T] {
	return &Track[T]{kind: kind, staticValue: defaultValue}
}

// Mode returns ModeStatic or ModeAnimated.
func (t *Track[T]) Mode() TrackMode {
	if t.animated {
		return ModeAnimated
	}
	return ModeStatic
}

// Animated reports whether the track evaluates its keyframes.
func (t *Track[T]) Animated() bool { return t.animated }

// Static reports whether the track evaluates to its static value.
func (t *Track[T]) Static() bool { return !t.animated }

// StaticValue returns the value used in static mode. It is kept while animated.
func (t *Track[T]) StaticValue() T { return t.staticValue }

// Interpolation returns the blending algorithm.
func (t *Track[T]) Interpolation() Interpolation { return t.interpolation }

// SetInterpolation changes the blending algorithm.
func (t *Track[T]) SetInterpolation(i Interpolation) { t.interpolation = i }

// Kind returns the value kind used for interpolation.
func (t *Track[T]) Kind() Animatable[T] { return t.kind }

// MakeAnimated switches to keyframe evaluation. The static value is kept.
func (t *Track[T]) MakeAnimated() { t.animated = true }

// MakeStatic switches to static evaluation with value.
// Keyframes are kept and come back if the track is animated again.
func (t *Track[T]) MakeStatic(value T) {
	t.staticValue = value
	t.animated = false
}

// Value returns the static value. Animated tracks need a time; use ValueAt.
func (t *Track[T]) Value() (T, error) {
	if t.animated {
		var zero T
		return zero, ErrStaticValueOnly
	}
	return t.staticValue, nil
}

// ValueAt evaluates the track at the given time.
//
// Only keyframes inside the time's interval take part. Before the first of
// them the first value is held, after the last the last value is held, and at
// an exact keyframe time that keyframe's value is returned unblended. If the
// interval holds no keyframes the static value is returned.
func (t *Track[T]) ValueAt(at Time) (T, error) {
	var zero T
	if !t.animated {
		return t.staticValue, nil
	}
	if len(t.keyframes) == 0 {
		return zero, ErrEmptyTrack
	}

	window, tick, err := t.window(at)
	if err != nil {
		return zero, err
	}
	if len(window) == 0 {
		return t.staticValue, nil
	}

	first, last := window[0], window[len(window)-1]
	if tick <= first.Time {
		return first.Value, nil
	}
	if tick >= last.Time {
		return last.Value, nil
	}

	i := floorIndex(window, tick)
	from := window[i]
	if from.Time == tick {
		return from.Value, nil
	}
	return Interpolate(t.kind, t.interpolation, tick, from, window[i+1]), nil
}

// Sample evaluates the track at the time clock gives for its global sequence.
func (t *Track[T]) Sample(clock Clock) (T, error) {
	gs, _ := t.GlobalSequence.Get()
	return t.ValueAt(clock.TimeFor(gs))
}

// LowerBound returns the last keyframe at or before the time, restricted to
// the time's interval. It does not interpolate.
func (t *Track[T]) LowerBound(at Time) (Keyframe[T], bool, error) {
	window, tick, err := t.window(at)
	if err != nil || len(window) == 0 {
		return Keyframe[T]{}, false, err
	}
	i := floorIndex(window, tick)
	if i < 0 {
		return Keyframe[T]{}, false, nil
	}
	return window[i], true, nil
}

// UpperBound returns the first keyframe at or after the time, restricted to
// the time's interval.
func (t *Track[T]) UpperBound(at Time) (Keyframe[T], bool, error) {
	window, tick, err := t.window(at)
	if err != nil || len(window) == 0 {
		return Keyframe[T]{}, false, err
	}
	i := sort.Search(len(window), func(i int) bool { return window[i].Time >= tick })
	if i == len(window) {
		return Keyframe[T]{}, false, nil
	}
	return window[i], true, nil
}

// Len returns the number of keyframes.
func (t *Track[T]) Len() int { return len(t.keyframes) }

// Get returns the keyframe at index.
func (t *Track[T]) Get(index int) (Keyframe[T], error) {
	if err := t.checkIndex(index); err != nil {
		return Keyframe[T]{}, err
	}
	return t.keyframes[index], nil
}

// Keyframes returns a copy of the keyframes in time order.
func (t *Track[T]) Keyframes() []Keyframe[T] {
	out := make([]Keyframe[T], len(t.keyframes))
	copy(out, t.keyframes)
	return out
}

// Add inserts k at its sorted position and returns that index. A keyframe
// with the same time as existing ones goes after them.
func (t *Track[T]) Add(k Keyframe[T]) int {
	index := t.insertIndex(k.Time)
	t.insertAt(index, k)
	return index
}

// Insert is Add; keyframes cannot be placed out of time order.
func (t *Track[T]) Insert(k Keyframe[T]) int {
	return t.Add(k)
}

// Set replaces the value and tangents of the keyframe at index. The time of
// the existing keyframe is kept so the order cannot break.
func (t *Track[T]) Set(index int, k Keyframe[T]) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	k.Time = t.keyframes[index].Time
	t.keyframes[index] = k
	return nil
}

// RemoveAt deletes the keyframe at index.
func (t *Track[T]) RemoveAt(index int) error {
	if err := t.checkIndex(index); err != nil {
		return err
	}
	t.keyframes = append(t.keyframes[:index], t.keyframes[index+1:]...)
	return nil
}

// Clear removes all keyframes.
func (t *Track[T]) Clear() {
	t.keyframes = nil
}

func (t *Track[T]) checkIndex(index int) error {
	if index < 0 || index >= len(t.keyframes) {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d (count %d)", index, len(t.keyframes))
	}
	return nil
}

func (t *Track[T]) insertIndex(time int) int {
	return sort.Search(len(t.keyframes), func(i int) bool { return t.keyframes[i].Time > time })
}

func (t *Track[T]) insertAt(index int, k Keyframe[T]) {
	t.keyframes = append(t.keyframes, Keyframe[T]{})
	copy(t.keyframes[index+1:], t.keyframes[index:])
	t.keyframes[index] = k
}

// window returns the keyframes visible to at and the effective tick.
func (t *Track[T]) window(at Time) ([]Keyframe[T], int, error) {
	tick, err := at.Tick()
	if err != nil {
		return nil, 0, err
	}
	start, end, err := at.Interval()
	if err != nil {
		return nil, 0, err
	}
	lo := sort.Search(len(t.keyframes), func(i int) bool { return t.keyframes[i].Time >= start })
	hi := sort.Search(len(t.keyframes), func(i int) bool { return t.keyframes[i].Time > end })
	if lo >= hi {
		return nil, tick, nil
	}
	return t.keyframes[lo:hi], tick, nil
}

// floorIndex returns the index of the last keyframe with Time <= tick, or -1.
func floorIndex[T any](keys []Keyframe[T], tick int) int {
	return sort.Search(len(keys), func(i int) bool { return keys[i].Time > tick }) - 1
}
