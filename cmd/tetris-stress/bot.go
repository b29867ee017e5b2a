package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/sirupsen/logrus"
)

const frameDelta = 1.0 / 60.0

// bot rotates the fresh piece a random number of times, slides it toward a
// random column and hard drops it, once per frame.
type bot struct {
	rng  *rand.Rand
	cols int
}

func (b *bot) Poll() []engine.Command {
	var cmds []engine.Command
	for range b.rng.IntN(4) {
		cmds = append(cmds, engine.CommandRotate)
	}

	dx := b.rng.IntN(b.cols) - b.cols/2
	move := engine.CommandMoveRight
	if dx < 0 {
		move = engine.CommandMoveLeft
		dx = -dx
	}
	for range dx {
		cmds = append(cmds, move)
	}
	return append(cmds, engine.CommandHardDrop)
}

// WorkerResult is what one worker observed over its run.
type WorkerResult struct {
	Session uuid.UUID
	Frames  int64
	Scores  []int
	Stats   engine.StatsSummary
	Frame   Stats
}

// runWorker plays games until ctx is done or maxGames games have ended. A
// maxGames of zero means no limit.
func runWorker(ctx context.Context, seed uint64, maxGames int, log logrus.FieldLogger) WorkerResult {
	cfg := engine.DefaultConfig()
	cfg.Rand = rand.New(rand.NewPCG(seed, seed+1))
	e := engine.New(cfg)

	var scores []int
	e.OnGameOver(func(finalScore int) {
		scores = append(scores, finalScore)
	})

	session := loop.NewSession(log)
	scheduler := loop.NewScheduler(e, session)
	scheduler.Register(&loop.InputSystem{Source: &bot{
		rng:  rand.New(rand.NewPCG(seed^0xb07, seed)),
		cols: e.Cols(),
	}})
	scheduler.Register(&loop.GravitySystem{Interval: loop.DefaultTickInterval})

	result := WorkerResult{
		Session: session.ID,
		Frame:   Stats{Samples: make([]time.Duration, 0)},
	}

Loop:
	for maxGames == 0 || len(scores) < maxGames {
		select {
		case <-ctx.Done():
			break Loop
		default:
			start := time.Now()
			scheduler.Once(frameDelta)
			result.Frame.Samples = append(result.Frame.Samples, time.Since(start))
		}
	}

	result.Frames = scheduler.GetStats().Frames
	result.Scores = scores
	result.Stats = e.Stats().Summary()
	result.Frame.Finalize()

	session.Logger().WithFields(logrus.Fields{
		"games":  len(scores),
		"frames": result.Frames,
		"locks":  result.Stats.Locks,
	}).Info("worker finished")

	return result
}
