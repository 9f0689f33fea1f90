package mdx

import "fmt"

// Extent is an axis-aligned bounding box with a bounding sphere radius.
type Extent struct {
	Min    [3]float32
	Max    [3]float32
	Radius float32
}

// Sequence is a named, bounded animation such as "Stand" or "Walk".
type Sequence struct {
	Name          string
	IntervalStart int
	IntervalEnd   int
	SyncPoint     int
	Rarity        float32
	MoveSpeed     float32
	NonLooping    bool
	Extent        Extent
}

// NewSequence creates a looping sequence over [start, end].
func NewSequence(name string, start, end int) *Sequence {
	return &Sequence{Name: name, IntervalStart: start, IntervalEnd: end}
}

// Duration returns the length of the interval in ticks.
func (s *Sequence) Duration() int {
	return s.IntervalEnd - s.IntervalStart
}

// String returns the name and interval.
func (s *Sequence) String() string {
	return fmt.Sprintf("%s [%d, %d]", s.Name, s.IntervalStart, s.IntervalEnd)
}

// GlobalSequence is an unnamed looping clock independent of the playing sequence.
type GlobalSequence struct {
	Duration int
}

// NewGlobalSequence creates a global sequence of the given length in ticks.
func NewGlobalSequence(duration int) *GlobalSequence {
	return &GlobalSequence{Duration: duration}
}

// String returns the duration.
func (g *GlobalSequence) String() string {
	return fmt.Sprintf("GlobalSequence(%d)", g.Duration)
}
