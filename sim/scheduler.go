package sim

import (
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	HaltedFrames    int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler executes registered systems in registration order against a
// world value of type W.
type Scheduler[W any] struct {
	systems      []System[W]
	systemStats  []*systemStatsInternal
	commands     *Commands
	frames       int64
	haltedFrames int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler[W any]() *Scheduler[W] {
	return &Scheduler[W]{
		systems:  make([]System[W], 0),
		commands: newCommands(),
	}
}

// Register appends a system to the execution order.
func (s *Scheduler[W]) Register(system System[W]) {
	if system == nil {
		panic("sim: cannot register a nil system")
	}
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes every registered system once against world, then flushes the
// frame's deferred commands. A system calling Commands.Halt skips the systems
// after it.
func (s *Scheduler[W]) Once(world W, dt, now float64) {
	frame := newUpdateFrame(world, dt, now, s.commands)
	s.frames++

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if frame.Commands.Halted() {
			s.haltedFrames++
			break
		}
	}

	frame.Commands.Flush()
}

// Stats returns statistics about system execution.
func (s *Scheduler[W]) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		Frames:       s.frames,
		HaltedFrames: s.haltedFrames,
		Systems:      make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
