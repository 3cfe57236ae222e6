package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 5 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 5*time.Millisecond, s.Max)
	assert.Equal(t, 3*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{
		Duration:    time.Second,
		Sessions:    10,
		Seed:        42,
		CommandRate: 4,
		TickRate:    60,
		TotalTicks:  600,
		TotalTime:   time.Second,
		Commands:    40,
		Accepted:    31,
		Games:       2,
		Arena:       arena.Stats{Sessions: 10, Running: 9, Over: 1, Lines: 7, Locks: 55},
		Pipeline: &sim.SchedulerStats{
			Systems: []sim.SystemStats{{Name: "GravitySystem", ExecutionCount: 60}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "- **Sessions:** 10")
	assert.Contains(t, out, "600 ticks/s")
	assert.Contains(t, out, "40 issued, 31 accepted")
	assert.Contains(t, out, "9 running, 0 paused, 1 over")
	assert.Contains(t, out, "| GravitySystem | 60 |")
	assert.NotContains(t, out, "GC Pause")
}
