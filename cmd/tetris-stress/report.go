package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/tetris/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Workers  int
	Seed     uint64

	// Results
	Sessions     []uuid.UUID
	TotalTime    time.Duration
	TotalFrames  int64
	Games        int
	Locks        int
	Lines        int
	LocksByClear [5]int
	Spawns       []ShapeCount
	Score        ScoreStats
	FrameTime    Stats

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ShapeCount struct {
	Kind  engine.ShapeKind
	Count int
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

// ScoreStats summarizes final scores. Median is the lower middle value for
// an even count.
type ScoreStats struct {
	Min    int
	Max    int
	Avg    float64
	Median int
	Scores []int
}

func (s *ScoreStats) Finalize() {
	if len(s.Scores) == 0 {
		return
	}

	sorted := slices.Sorted(slices.Values(s.Scores))
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Median = sorted[(len(sorted)-1)/2]

	total := 0
	for _, v := range sorted {
		total += v
	}
	s.Avg = float64(total) / float64(len(sorted))
}

// Merge folds worker results into the report and finalizes its statistics.
func (r *Report) Merge(results []WorkerResult) {
	spawns := make(map[engine.ShapeKind]int)
	for _, res := range results {
		r.Sessions = append(r.Sessions, res.Session)
		r.TotalFrames += res.Frames
		r.Games += len(res.Scores)
		r.Locks += res.Stats.Locks
		r.Lines += res.Stats.Lines
		for n, c := range res.Stats.LocksByClear {
			r.LocksByClear[n] += c
		}
		for kind, c := range res.Stats.Spawns {
			spawns[kind] += c
		}
		r.Score.Scores = append(r.Score.Scores, res.Scores...)
		r.FrameTime.Samples = append(r.FrameTime.Samples, res.Frame.Samples...)
	}

	r.Spawns = r.Spawns[:0]
	for _, kind := range engine.ShapeKinds {
		r.Spawns = append(r.Spawns, ShapeCount{Kind: kind, Count: spawns[kind]})
	}

	r.Score.Finalize()
	r.FrameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Workers:** {{.Workers}}
- **Seed:** {{.Seed}}

## Sessions
{{range .Sessions}}- {{.}}
{{end}}
## Gameplay Results
- **Games Finished:** {{.Games}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **Final Score:**
  - **Avg:** {{printf "%.2f" .Score.Avg}}
  - **Median:** {{.Score.Median}}
  - **Min:** {{.Score.Min}}
  - **Max:** {{.Score.Max}}

| Lines per lock | Locks |
|---|---|
{{range $n, $c := .LocksByClear}}| {{$n}} | {{$c}} |
{{end}}
| Shape | Spawned |
|---|---|
{{range .Spawns}}| {{.Kind}} | {{.Count}} |
{{end}}
## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
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
		return fmt.Errorf("failed to parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
