package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/tetris"
)

// Game implements ebiten.Game around a single session.
type Game struct {
	Session *tetris.Session

	lastUpdate   time.Time
	imguiBackend *debugui_ebiten.ImguiBackend
	perf         *debugui.PerformanceStats
}

func main() {
	cfg := tetris.DefaultConfig()
	cfg.Seed = uint64(time.Now().UnixNano())
	cfg.RegisterFlags(flag.CommandLine)
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector overlay.")
	sound := flag.Bool("audio", true, "Play sound cues.")
	flag.Parse()

	session, err := tetris.NewSession(cfg)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}
	defer session.Close()

	if *sound {
		player := audio.NewPlayer(audio.DefaultCues())
		if err := player.Start(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer player.Close()
			session.Subscribe(player.Handle)
		}
	}

	width, height := screenSize(cfg.Cols, cfg.Rows)
	game := &Game{Session: session}

	if *debug {
		game.imguiBackend = debugui_ebiten.NewImguiBackend("Blockfall", width+480, height)
		game.perf = debugui.NewPerformanceStats(120)

		inspector := debugui.NewSessionInspector("Session", session)
		frames := debugui.NewFrameTimer()
		game.imguiBackend.Overlay.Add(inspector.Render)
		game.imguiBackend.Overlay.Add(func() {
			game.perf.Render(session.SchedulerStats(), frames.GetDeltaTime())
		})
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now

	if g.imguiBackend != nil {
		g.imguiBackend.Update(1.0 / float64(ebiten.TPS()))
	}

	if g.imguiBackend == nil || !g.imguiBackend.WantCaptureKeyboard() {
		for _, cmd := range pollCommands() {
			g.Session.Apply(cmd)
		}
	}

	g.Session.Step(elapsed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, g.Session.Snapshot())

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
