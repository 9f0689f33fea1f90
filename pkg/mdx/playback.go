package mdx

// Playhead tracks the current tick within one sequence or global sequence.
type Playhead struct {
	sequence       *Sequence
	globalSequence *GlobalSequence
	start          int
	end            int
	current        int
}

// NewSequencePlayhead starts at the beginning of seq.
func NewSequencePlayhead(seq *Sequence) *Playhead {
	return &Playhead{
		sequence: seq,
		start:    seq.IntervalStart,
		end:      seq.IntervalEnd,
		current:  seq.IntervalStart,
	}
}

// NewGlobalPlayhead starts at tick zero of gs.
func NewGlobalPlayhead(gs *GlobalSequence) *Playhead {
	return &Playhead{globalSequence: gs, end: gs.Duration}
}

// Sequence returns the sequence being played, or nil for a global sequence.
func (p *Playhead) Sequence() *Sequence { return p.sequence }

// GlobalSequence returns the global sequence being played, or nil.
func (p *Playhead) GlobalSequence() *GlobalSequence { return p.globalSequence }

// Current returns the current tick.
func (p *Playhead) Current() int { return p.current }

// Looping reports whether the playhead wraps at the end of its interval.
// Global sequences always loop.
func (p *Playhead) Looping() bool {
	return p.sequence == nil || !p.sequence.NonLooping
}

// Time returns the current position as a Time.
func (p *Playhead) Time() Time {
	if p.sequence != nil {
		return SequenceTime(p.sequence, p.current)
	}
	return GlobalTime(p.globalSequence, p.current)
}

// Advance moves the playhead forward by ticks. Past the end a looping
// playhead wraps to the start and a non-looping one holds at the end.
// It returns false once a non-looping sequence has finished.
func (p *Playhead) Advance(ticks int) bool {
	p.current += ticks
	if p.current < p.start {
		p.current = p.start
	}
	if p.current > p.end {
		if !p.Looping() {
			p.current = p.end
			return false
		}
		p.current = p.start
	}
	return true
}

// AdvanceSeconds converts dt to ticks at ticksPerSecond and advances.
func (p *Playhead) AdvanceSeconds(dt float64, ticksPerSecond int) bool {
	return p.Advance(int(dt * float64(ticksPerSecond)))
}

// Seek moves to tick, clamped to the interval.
func (p *Playhead) Seek(tick int) {
	p.current = clamp(tick, p.start, p.end)
}

// Reset moves back to the start of the interval.
func (p *Playhead) Reset() {
	p.current = p.start
}

// Timeline drives the playing sequence plus one clock per global sequence.
// It decides per track which of them addresses the evaluation.
type Timeline struct {
	active  *Playhead
	globals map[*GlobalSequence]*Playhead
}

// NewTimeline creates a timeline playing seq with clocks for globals.
// seq may be nil when the model has no sequences.
func NewTimeline(seq *Sequence, globals []*GlobalSequence) *Timeline {
	tl := &Timeline{globals: make(map[*GlobalSequence]*Playhead, len(globals))}
	for _, gs := range globals {
		tl.globals[gs] = NewGlobalPlayhead(gs)
	}
	tl.SetSequence(seq)
	return tl
}

// SetSequence switches the playing sequence and rewinds it. Global sequence
// clocks keep running.
func (tl *Timeline) SetSequence(seq *Sequence) {
	if seq == nil {
		tl.active = nil
		return
	}
	tl.active = NewSequencePlayhead(seq)
}

// Sequence returns the playing sequence, or nil.
func (tl *Timeline) Sequence() *Sequence {
	if tl.active == nil {
		return nil
	}
	return tl.active.sequence
}

// Active returns the playhead of the playing sequence, or nil.
func (tl *Timeline) Active() *Playhead { return tl.active }

// Advance moves every clock forward by ticks and reports the playing
// sequence's signal: false once a non-looping sequence has finished.
func (tl *Timeline) Advance(ticks int) bool {
	for _, p := range tl.globals {
		p.Advance(ticks)
	}
	if tl.active == nil {
		return true
	}
	return tl.active.Advance(ticks)
}

// TimeFor returns global-sequence time when gs is set and sequence time
// otherwise. A global sequence without its own clock is read at tick zero.
func (tl *Timeline) TimeFor(gs *GlobalSequence) Time {
	if gs != nil {
		if p, ok := tl.globals[gs]; ok {
			return p.Time()
		}
		return GlobalTime(gs, 0)
	}
	if tl.active == nil {
		return Time{}
	}
	return tl.active.Time()
}

var _ Clock = (*Timeline)(nil)
