package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/blockfall/tetris"
)

// SampleRate is the rate every cue is synthesised at.
const SampleRate = beep.SampleRate(44100)

// Note is one tone of a cue.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Cue is a short melody played in response to an event.
type Cue struct {
	Notes  []Note
	Volume float64 // linear gain, 0 silences the cue
}

// Samples returns the cue's total length in samples.
func (c Cue) Samples() int {
	n := 0
	for _, note := range c.Notes {
		n += SampleRate.N(note.Duration)
	}
	return n
}

// Streamer renders the cue as a finite stream.
func (c Cue) Streamer() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(c.Notes))
	for _, note := range c.Notes {
		tone, err := generators.SineTone(SampleRate, note.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(SampleRate.N(note.Duration), tone))
	}
	return withVolume(beep.Seq(parts...), c.Volume), nil
}

// math.Log2(0) is -Inf, so zero gain is expressed as Silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Cues maps session events to melodies. Events without an entry are silent.
type Cues map[tetris.EventType]Cue

// DefaultCues returns the stock cue set.
func DefaultCues() Cues {
	return Cues{
		tetris.EventLocked: {
			Notes:  []Note{{Freq: 220, Duration: 40 * time.Millisecond}},
			Volume: 0.25,
		},
		tetris.EventLinesCleared: {
			Notes: []Note{
				{Freq: 660, Duration: 60 * time.Millisecond},
				{Freq: 880, Duration: 90 * time.Millisecond},
			},
			Volume: 0.4,
		},
		tetris.EventGameOver: {
			Notes: []Note{
				{Freq: 392, Duration: 150 * time.Millisecond},
				{Freq: 330, Duration: 150 * time.Millisecond},
				{Freq: 262, Duration: 300 * time.Millisecond},
			},
			Volume: 0.4,
		},
	}
}

// For returns the cue for ev. Line clears of several rows repeat the top note
// once per extra row.
func (c Cues) For(ev tetris.Event) (Cue, bool) {
	cue, ok := c[ev.Type]
	if !ok || len(cue.Notes) == 0 {
		return Cue{}, false
	}
	if ev.Type == tetris.EventLinesCleared && ev.Rows > 1 {
		last := cue.Notes[len(cue.Notes)-1]
		notes := append([]Note(nil), cue.Notes...)
		for i := 1; i < ev.Rows; i++ {
			notes = append(notes, last)
		}
		cue.Notes = notes
	}
	return cue, true
}
