package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/sim"
	"github.com/plus3/blockfall/tetris"
)

// host owns the screen and the session. Only the loop goroutine touches
// either; key events arrive through events.
type host struct {
	screen  tcell.Screen
	session *tetris.Session
	events  chan tcell.Event
	cancel  context.CancelFunc
}

// Step drains pending input, advances the session and redraws.
func (h *host) Step(elapsed float64) int {
	for pending := true; pending; {
		select {
		case ev := <-h.events:
			h.handle(ev)
		default:
			pending = false
		}
	}

	ticks := h.session.Step(elapsed)
	draw(h.screen, h.session.Snapshot())
	h.screen.Show()
	return ticks
}

func (h *host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			h.cancel()
			return
		}
		if cmd, ok := commandForKey(ev); ok {
			h.session.Apply(cmd)
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
}

func main() {
	cfg := tetris.DefaultConfig()
	cfg.Seed = uint64(time.Now().UnixNano())
	cfg.RegisterFlags(flag.CommandLine)
	fps := flag.Int("fps", 60, "Frames drawn per second.")
	sound := flag.Bool("audio", true, "Play sound cues.")
	flag.Parse()

	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	if *sound {
		player := audio.NewPlayer(audio.DefaultCues())
		if err := player.Start(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("Audio disabled: %v", err)
		} else {
			defer player.Close()
			session.Subscribe(player.Handle)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := &host{
		screen:  screen,
		session: session,
		events:  make(chan tcell.Event, 100),
		cancel:  cancel,
	}

	quit := make(chan struct{})
	go screen.ChannelEvents(h.events, quit)

	interval := time.Second / time.Duration(max(*fps, 1))
	ticks := sim.RunLoop(ctx, interval, h)

	close(quit)
	screen.Fini()

	log.Printf("Ran %d ticks, cleared %d lines", ticks, session.Lines())
}
