// Command tetris-stress plays headless bot games in parallel and prints a
// Markdown report.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/tetris/config"
	"github.com/sirupsen/logrus"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	workers := flag.Int("workers", runtime.NumCPU(), "The number of games played in parallel.")
	games := flag.Int("games", 0, "Stop each worker after this many games. Zero runs until the duration elapses.")
	seed := flag.Uint64("seed", 0, "Base seed for piece order and bot moves. Zero picks a random seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if cfg, err := config.FromEnv(); err != nil {
		logger.WithError(err).Warn("ignoring environment config")
	} else {
		logger.SetLevel(cfg.Level())
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}

	logger.WithFields(logrus.Fields{
		"workers":  *workers,
		"duration": *duration,
		"seed":     *seed,
	}).Info("starting stress test")

	report := &Report{
		Duration:       *duration,
		Workers:        *workers,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	results := make([]WorkerResult, *workers)

	var wg sync.WaitGroup
	for i := range *workers {
		wg.Go(func() {
			log := logger.WithField("worker", i)
			results[i] = runWorker(ctx, *seed+uint64(i), *games, log)
		})
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Merge(results)

	logger.Info("stress test finished")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.WithError(err).Fatal("failed to generate report")
	}
	fmt.Println("--- End of Report ---")
}
