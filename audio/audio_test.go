package audio_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCueStreamsItsLength(t *testing.T) {
	cue := audio.Cue{
		Notes: []audio.Note{
			{Freq: 440, Duration: 10 * time.Millisecond},
			{Freq: 880, Duration: 20 * time.Millisecond},
		},
		Volume: 0.5,
	}
	require.Equal(t, audio.SampleRate.N(10*time.Millisecond)+audio.SampleRate.N(20*time.Millisecond), cue.Samples())

	streamer, err := cue.Streamer()
	require.NoError(t, err)

	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for {
		n, ok := streamer.Stream(buf)
		for _, s := range buf[:n] {
			peak = max(peak, s[0])
		}
		total += n
		if !ok || n == 0 {
			break
		}
	}

	assert.Equal(t, cue.Samples(), total)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, 0.5+1e-9)
}

func TestSilentCue(t *testing.T) {
	cue := audio.Cue{Notes: []audio.Note{{Freq: 440, Duration: 5 * time.Millisecond}}}
	streamer, err := cue.Streamer()
	require.NoError(t, err)

	buf := make([][2]float64, cue.Samples())
	n, _ := streamer.Stream(buf)
	require.Equal(t, len(buf), n)
	for _, s := range buf {
		assert.Zero(t, s[0])
		assert.Zero(t, s[1])
	}
}

func TestInvalidToneFails(t *testing.T) {
	cue := audio.Cue{Notes: []audio.Note{{Freq: float64(audio.SampleRate), Duration: time.Millisecond}}, Volume: 1}
	_, err := cue.Streamer()
	assert.Error(t, err)
}

func TestCuesFor(t *testing.T) {
	cues := audio.DefaultCues()

	_, ok := cues.For(tetris.Event{Type: tetris.EventRestarted})
	assert.False(t, ok)

	single, ok := cues.For(tetris.Event{Type: tetris.EventLinesCleared, Rows: 1})
	require.True(t, ok)
	quad, ok := cues.For(tetris.Event{Type: tetris.EventLinesCleared, Rows: 4})
	require.True(t, ok)
	assert.Len(t, quad.Notes, len(single.Notes)+3)

	// expanding a cue leaves the stock set untouched
	assert.Len(t, cues[tetris.EventLinesCleared].Notes, len(single.Notes))
}

func TestPlayerMixesSessionEvents(t *testing.T) {
	player := audio.NewPlayer(audio.DefaultCues())

	cfg := tetris.DefaultConfig()
	session, err := tetris.NewSession(cfg, tetris.WithRandomizer(tetris.NewSequence(tetris.O)))
	require.NoError(t, err)
	session.Subscribe(player.Handle)

	require.True(t, session.Apply(tetris.HardDrop))
	session.Step(session.DT())
	assert.Equal(t, 1, session.Locks())
	assert.Equal(t, 1, player.Pending())

	assert.False(t, player.Play(tetris.Event{Type: tetris.EventRestarted}))
	assert.Equal(t, 1, player.Pending())

	lock := audio.DefaultCues()[tetris.EventLocked]
	buf := make([][2]float64, 512)
	for streamed := 0; streamed < 2*lock.Samples(); streamed += len(buf) {
		player.Streamer().Stream(buf)
	}
	assert.Equal(t, 0, player.Pending(), "finished cues leave the mix")

	// without Start there is nothing to release
	player.Close()
}
