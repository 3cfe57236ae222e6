package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/require"
)

// testConfig uses a power-of-two tick rate so simulation time is exact.
func testConfig() tetris.Config {
	cfg := tetris.DefaultConfig()
	cfg.TickRate = 64
	return cfg
}

func newTestSession(t *testing.T, kinds ...tetris.Kind) *tetris.Session {
	t.Helper()
	session, err := tetris.NewSession(testConfig(), tetris.WithRandomizer(tetris.NewSequence(kinds...)))
	require.NoError(t, err)
	return session
}

func tickN(s *tetris.Session, n int) {
	for i := 0; i < n; i++ {
		s.Step(s.DT())
	}
}
