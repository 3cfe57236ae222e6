package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

// Player mixes cues for session events. Until Start is called the mix is
// only reachable through Streamer.
type Player struct {
	cues    Cues
	mixer   *beep.Mixer
	started bool
}

func NewPlayer(cues Cues) *Player {
	return &Player{
		cues:  cues,
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker and begins playback of the mix.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.started = false
}

// Handle queues the cue bound to ev, if any. It can be passed straight to
// Session.Subscribe.
func (p *Player) Handle(ev tetris.Event) {
	p.Play(ev)
}

// Play queues the cue bound to ev and reports whether one was queued.
func (p *Player) Play(ev tetris.Event) bool {
	cue, ok := p.cues.For(ev)
	if !ok {
		return false
	}
	streamer, err := cue.Streamer()
	if err != nil {
		return false
	}

	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	p.mixer.Add(streamer)
	return true
}

// Pending returns the number of cues still playing.
func (p *Player) Pending() int {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}

// Streamer exposes the mix for custom sinks.
func (p *Player) Streamer() beep.Streamer {
	return p.mixer
}
