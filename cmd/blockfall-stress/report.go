package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/sim"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Sessions    int
	Seed        uint64
	CommandRate float64
	TickRate    int

	// Results
	TotalUpdates   int64
	TotalTicks     int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Commands       int64
	Accepted       int64
	Games          int64
	Arena          arena.Stats
	Pipeline       *sim.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// TicksPerSecond is the simulation throughput across all sessions.
func (r *Report) TicksPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalTicks) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{.Seed}}
- **Command Rate:** {{.CommandRate}} per session per second
- **Tick Rate:** {{.TickRate}} Hz

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Ticks:** {{.TotalTicks}} ({{printf "%.0f" .TicksPerSecond}} ticks/s)
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Gameplay
- **Commands:** {{.Commands}} issued, {{.Accepted}} accepted
- **Finished Games:** {{.Games}}
- **Sessions:** {{.Arena.Running}} running, {{.Arena.Paused}} paused, {{.Arena.Over}} over
- **Lines Cleared:** {{.Arena.Lines}}
- **Pieces Locked:** {{.Arena.Locks}}
{{with .Pipeline}}
## Tick Pipeline (first session)
| System | Runs | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Memory Usage (MB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} -> {{mb .MemStatsEnd.HeapAlloc}} (delta {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}})
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} -> {{mb .MemStatsEnd.TotalAlloc}} (delta {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}})
- Sys Memory:     {{mb .MemStatsStart.Sys}} -> {{mb .MemStatsEnd.Sys}} (delta {{mb (bsub .MemStatsEnd.Sys .MemStatsStart.Sys)}})
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
