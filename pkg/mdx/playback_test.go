package mdx

import (
	"errors"
	"testing"
)

func TestPlayhead_NonLoopingStopsAtEnd(t *testing.T) {
	seq := NewSequence("Death", 100, 500)
	seq.NonLooping = true
	p := NewSequencePlayhead(seq)

	if !p.Advance(300) {
		t.Fatal("expected true inside the interval")
	}
	if p.Current() != 400 {
		t.Errorf("expected 400, got %d", p.Current())
	}
	if p.Advance(200) {
		t.Error("expected false past the end of a non-looping sequence")
	}
	if p.Current() != 500 {
		t.Errorf("expected clamp to 500, got %d", p.Current())
	}
}

func TestPlayhead_LoopingWraps(t *testing.T) {
	seq := NewSequence("Stand", 100, 500)
	p := NewSequencePlayhead(seq)

	p.Advance(300)
	if !p.Advance(200) {
		t.Error("expected true for a looping sequence")
	}
	if p.Current() != 100 {
		t.Errorf("expected wrap to 100, got %d", p.Current())
	}
}

func TestPlayhead_ClampsBelowStart(t *testing.T) {
	p := NewSequencePlayhead(NewSequence("Walk", 100, 500))
	p.Advance(-50)
	if p.Current() != 100 {
		t.Errorf("expected 100, got %d", p.Current())
	}
}

func TestPlayhead_AdvanceSeconds(t *testing.T) {
	p := NewSequencePlayhead(NewSequence("Walk", 0, 2000))
	p.AdvanceSeconds(0.5, 960)
	if p.Current() != 480 {
		t.Errorf("expected 480, got %d", p.Current())
	}
}

func TestPlayhead_SeekAndReset(t *testing.T) {
	p := NewSequencePlayhead(NewSequence("Walk", 100, 200))
	p.Seek(1000)
	if p.Current() != 200 {
		t.Errorf("expected seek clamp to 200, got %d", p.Current())
	}
	p.Reset()
	if p.Current() != 100 {
		t.Errorf("expected reset to 100, got %d", p.Current())
	}
}

func TestTime_Validate(t *testing.T) {
	seq := NewSequence("Stand", 0, 100)
	gs := NewGlobalSequence(50)

	tests := []struct {
		name    string
		time    Time
		wantErr bool
	}{
		{"sequence", SequenceTime(seq, 10), false},
		{"global", GlobalTime(gs, 10), false},
		{"neither", Time{}, true},
		{"both", Time{sequence: seq, globalSequence: gs}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.time.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrDivergentTimeAddress) {
				t.Errorf("expected ErrDivergentTimeAddress, got %v", err)
			}
		})
	}
}

func TestTime_TickGlobalZeroDuration(t *testing.T) {
	tick, err := GlobalTime(NewGlobalSequence(0), 123).Tick()
	if err != nil || tick != 0 {
		t.Errorf("expected tick 0, got %d (%v)", tick, err)
	}
	tick, _ = GlobalTime(NewGlobalSequence(100), -30).Tick()
	if tick != 70 {
		t.Errorf("expected negative tick to wrap to 70, got %d", tick)
	}
}

func TestTimeline_TwoTierClock(t *testing.T) {
	seq := NewSequence("Walk", 1000, 2000)
	gs := NewGlobalSequence(300)
	other := NewGlobalSequence(10)
	tl := NewTimeline(seq, []*GlobalSequence{gs})

	tl.Advance(400)

	st := tl.TimeFor(nil)
	if st.Sequence() != seq || st.Raw() != 1400 {
		t.Errorf("expected sequence time 1400, got %d on %v", st.Raw(), st.Sequence())
	}
	gt := tl.TimeFor(gs)
	if gt.GlobalSequence() != gs || gt.Raw() != 0 {
		// 400 > 300 wraps to the start.
		t.Errorf("expected wrapped global time 0, got %d", gt.Raw())
	}
	if ot := tl.TimeFor(other); ot.GlobalSequence() != other || ot.Raw() != 0 {
		t.Errorf("expected unknown global sequence at tick 0, got %d", ot.Raw())
	}
}

func TestTimeline_NoSequence(t *testing.T) {
	tl := NewTimeline(nil, nil)
	if !tl.Advance(10) {
		t.Error("expected true without a playing sequence")
	}
	if err := tl.TimeFor(nil).Validate(); !errors.Is(err, ErrDivergentTimeAddress) {
		t.Errorf("expected ErrDivergentTimeAddress, got %v", err)
	}
}
