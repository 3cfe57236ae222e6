package tetris

import (
	"errors"
	"flag"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	RandomizerBag     = "bag"
	RandomizerUniform = "uniform"
)

// Config holds the tunable constants of a session. Times are simulated
// seconds.
type Config struct {
	Cols int
	Rows int

	// TickRate is the number of fixed simulation ticks per second.
	TickRate int
	// MaxFrame caps the wall time a single Step may contribute.
	MaxFrame float64

	InitialCooldown float64
	// CooldownStep is subtracted from the fall cooldown per cleared row.
	CooldownStep float64
	MinCooldown  float64

	Randomizer string
	Seed       uint64
}

func DefaultConfig() Config {
	return Config{
		Cols:            10,
		Rows:            16,
		TickRate:        60,
		MaxFrame:        0.25,
		InitialCooldown: 1.0,
		CooldownStep:    0.01,
		MinCooldown:     0.05,
		Randomizer:      RandomizerBag,
	}
}

// RegisterFlags binds the fields of c to flags on fs, using the current
// values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "Board width in cells.")
	fs.IntVar(&c.Rows, "rows", c.Rows, "Board height in cells.")
	fs.IntVar(&c.TickRate, "tick-rate", c.TickRate, "Fixed simulation ticks per second.")
	fs.Float64Var(&c.MaxFrame, "max-frame", c.MaxFrame, "Maximum wall seconds a single frame may feed the clock.")
	fs.Float64Var(&c.InitialCooldown, "cooldown", c.InitialCooldown, "Initial fall cooldown in seconds.")
	fs.Float64Var(&c.CooldownStep, "cooldown-step", c.CooldownStep, "Cooldown reduction per cleared row.")
	fs.Float64Var(&c.MinCooldown, "min-cooldown", c.MinCooldown, "Lower bound of the fall cooldown.")
	fs.StringVar(&c.Randomizer, "randomizer", c.Randomizer, "Piece randomizer: bag or uniform.")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Randomizer seed.")
}

// DT returns the fixed tick duration.
func (c Config) DT() float64 {
	return 1.0 / float64(c.TickRate)
}

// Validate reports the first problem with c. Every piece must fit on an
// empty board at its spawn offset.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("board %dx%d: %w", c.Cols, c.Rows, ErrInvalidConfig)
	}
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %d: %w", c.TickRate, ErrInvalidConfig)
	}
	if c.MaxFrame <= 0 {
		return fmt.Errorf("max frame %v: %w", c.MaxFrame, ErrInvalidConfig)
	}
	if c.InitialCooldown <= 0 || c.MinCooldown <= 0 || c.MinCooldown > c.InitialCooldown {
		return fmt.Errorf("cooldown %v (min %v): %w", c.InitialCooldown, c.MinCooldown, ErrInvalidConfig)
	}
	if c.CooldownStep < 0 {
		return fmt.Errorf("cooldown step %v: %w", c.CooldownStep, ErrInvalidConfig)
	}
	switch c.Randomizer {
	case RandomizerBag, RandomizerUniform:
	default:
		return fmt.Errorf("randomizer %q: %w", c.Randomizer, ErrInvalidConfig)
	}

	board := NewBoard(c.Cols, c.Rows)
	for _, kind := range Kinds() {
		if Collides(board, NewPiece(kind, c.InitialCooldown, 0)) {
			return fmt.Errorf("%v does not fit a %dx%d board at spawn: %w", kind, c.Cols, c.Rows, ErrInvalidConfig)
		}
	}

	return nil
}
