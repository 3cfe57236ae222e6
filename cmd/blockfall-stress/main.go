package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	cfg := tetris.DefaultConfig()
	cfg.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	sessions := flag.Int("sessions", 1000, "The number of concurrent game sessions.")
	commandRate := flag.Float64("command-rate", 4, "Random commands per session per simulated second.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	// 1. Setup the arena
	a, err := arena.New(cfg)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	defer a.Close()

	// 2. Populate the arena, each session seeded from the base seed
	log.Printf("Spawning %d sessions...\n", *sessions)
	for i := 0; i < *sessions; i++ {
		a.Spawn(cfg.Seed + uint64(i))
	}
	log.Println("Population complete.")

	driver := NewDriver(a, *commandRate, cfg.Seed)

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Sessions:       *sessions,
		Seed:           cfg.Seed,
		CommandRate:    *commandRate,
		TickRate:       cfg.TickRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates, totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			totalTicks += int64(driver.Step(deltaTime.Seconds()))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.TotalTicks = totalTicks
	report.UpdateTime.Finalize()
	report.Commands = driver.Commands
	report.Accepted = driver.Accepted
	report.Games = driver.Games
	report.Arena = a.Stats()
	for _, session := range a.All() {
		report.Pipeline = session.SchedulerStats()
		break
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
