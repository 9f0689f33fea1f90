package mdx

import "github.com/pkg/errors"

// Time is a point on either a sequence's local timeline or a global sequence's
// looping timeline. Exactly one of the two must be set.
type Time struct {
	tick           int
	sequence       *Sequence
	globalSequence *GlobalSequence
}

// SequenceTime addresses tick on the timeline of seq.
func SequenceTime(seq *Sequence, tick int) Time {
	return Time{tick: tick, sequence: seq}
}

// GlobalTime addresses tick on the looping timeline of gs.
func GlobalTime(gs *GlobalSequence, tick int) Time {
	return Time{tick: tick, globalSequence: gs}
}

// Sequence returns the addressed sequence, or nil for global time.
func (t Time) Sequence() *Sequence { return t.sequence }

// GlobalSequence returns the addressed global sequence, or nil for sequence time.
func (t Time) GlobalSequence() *GlobalSequence { return t.globalSequence }

// Raw returns the tick as given, before clamping or wrapping.
func (t Time) Raw() int { return t.tick }

// Validate fails with ErrDivergentTimeAddress unless exactly one timeline is set.
func (t Time) Validate() error {
	if (t.sequence == nil) == (t.globalSequence == nil) {
		return errors.Wrapf(ErrDivergentTimeAddress, "tick %d", t.tick)
	}
	return nil
}

// Interval returns the window of keyframe times the address can see.
// For a global sequence this is [0, duration].
func (t Time) Interval() (start, end int, err error) {
	if err := t.Validate(); err != nil {
		return 0, 0, err
	}
	if t.sequence != nil {
		return t.sequence.IntervalStart, t.sequence.IntervalEnd, nil
	}
	return 0, t.globalSequence.Duration, nil
}

// Tick returns the effective tick: clamped to the sequence interval, or
// wrapped modulo the global sequence duration.
func (t Time) Tick() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	if t.sequence != nil {
		return clamp(t.tick, t.sequence.IntervalStart, t.sequence.IntervalEnd), nil
	}

	duration := t.globalSequence.Duration
	if duration <= 0 {
		return 0, nil
	}
	tick := t.tick % duration
	if tick < 0 {
		tick += duration
	}
	return tick, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
