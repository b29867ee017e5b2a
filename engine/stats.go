package engine

import "github.com/kamstrup/intmap"

// maxClear is the most rows a single tetromino can complete.
const maxClear = 4

// Stats accumulates counters over the lifetime of an engine, across game
// overs.
type Stats struct {
	spawns *intmap.Map[ShapeKind, int]
	clears *intmap.Map[int, int]

	locks     int
	lines     int
	gamesOver int
	best      int
}

// StatsSummary is a point-in-time copy of Stats.
type StatsSummary struct {
	Locks     int
	Lines     int
	GamesOver int
	BestScore int

	// Spawns counts spawned pieces per shape.
	Spawns map[ShapeKind]int
	// LocksByClear[n] counts locks that cleared exactly n rows.
	LocksByClear [maxClear + 1]int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[ShapeKind, int](len(ShapeKinds)),
		clears: intmap.New[int, int](maxClear + 1),
	}
}

func (s *Stats) recordSpawn(kind ShapeKind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locks++
	s.lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

func (s *Stats) recordGameOver(finalScore int) {
	s.gamesOver++
	s.best = max(s.best, finalScore)
}

// Spawned returns how many pieces of kind have been spawned.
func (s *Stats) Spawned(kind ShapeKind) int {
	n, _ := s.spawns.Get(kind)
	return n
}

// LocksClearing returns how many locks cleared exactly n rows.
func (s *Stats) LocksClearing(n int) int {
	c, _ := s.clears.Get(n)
	return c
}

func (s *Stats) Locks() int     { return s.locks }
func (s *Stats) Lines() int     { return s.lines }
func (s *Stats) GamesOver() int { return s.gamesOver }

// BestScore is the highest final score seen at a game over.
func (s *Stats) BestScore() int { return s.best }

// Summary copies the counters.
func (s *Stats) Summary() StatsSummary {
	sum := StatsSummary{
		Locks:     s.locks,
		Lines:     s.lines,
		GamesOver: s.gamesOver,
		BestScore: s.best,
		Spawns:    make(map[ShapeKind]int, len(ShapeKinds)),
	}
	for _, kind := range ShapeKinds {
		sum.Spawns[kind] = s.Spawned(kind)
	}
	for n := range sum.LocksByClear {
		sum.LocksByClear[n] = s.LocksClearing(n)
	}
	return sum
}

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.spawns.Clear()
	s.clears.Clear()
	s.locks, s.lines, s.gamesOver, s.best = 0, 0, 0, 0
}
