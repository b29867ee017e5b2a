// Package loop drives an engine from a timer and an input source. Systems
// run in registration order each frame and queue their changes; the queue is
// flushed at the end of the frame, so ticks and commands are always applied
// one at a time by the goroutine running the scheduler.
package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/tetris/engine"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
	Flush           SystemStats
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

func newSystemStats(name string) *systemStatsInternal {
	return &systemStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	s.minDuration = min(s.minDuration, d)
	s.maxDuration = max(s.maxDuration, d)
}

func (s *systemStatsInternal) export() SystemStats {
	avg := time.Duration(0)
	minDuration := s.minDuration
	if s.executionCount > 0 {
		avg = s.totalDuration / time.Duration(s.executionCount)
	} else {
		minDuration = 0
	}
	return SystemStats{
		Name:           s.name,
		ExecutionCount: s.executionCount,
		MinDuration:    minDuration,
		MaxDuration:    s.maxDuration,
		AvgDuration:    avg,
		LastDuration:   s.lastDuration,
		TotalDuration:  s.totalDuration,
	}
}

// Scheduler owns the engine for the duration of a run and executes systems
// against it.
type Scheduler struct {
	engine      *engine.Engine
	session     *Session
	systems     []System
	systemStats []*systemStatsInternal
	flushStats  *systemStatsInternal
	frames      int64
}

// NewScheduler creates a scheduler for e. A nil session gets a silent one.
func NewScheduler(e *engine.Engine, session *Session) *Scheduler {
	if session == nil {
		session = NewSession(nil)
	}
	return &Scheduler{
		engine:     e,
		session:    session,
		systems:    make([]System, 0),
		flushStats: newSystemStats("Flush"),
	}
}

func (s *Scheduler) Engine() *engine.Engine { return s.engine }
func (s *Scheduler) Session() *Session      { return s.session }

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}
	s.systemStats = append(s.systemStats, newSystemStats(systemType.Name()))
}

// Once executes all registered systems once with the given delta time in
// seconds, then applies the queued commands.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt, s.engine, s.session)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.systemStats[i].record(time.Since(start))
	}

	start := time.Now()
	frame.Commands.Flush(s.engine, s.session.Observe)
	s.flushStats.record(time.Since(start))
	s.frames++
}

// Run executes frames at the given interval until the context is cancelled.
// The ticker is released when Run returns.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log := s.session.Logger()
	log.WithField("interval", interval).Debug("loop started")
	defer log.Debug("loop stopped")

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
		Flush:       s.flushStats.export(),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		stats.Systems[i] = internal.export()
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
