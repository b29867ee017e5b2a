package loop

import (
	"math"
	"time"
)

// DefaultTickInterval is the reference gravity period.
const DefaultTickInterval = 500 * time.Millisecond

// InputSystem queues every command its source reports.
type InputSystem struct {
	Source InputSource
}

func (s *InputSystem) Execute(frame *Frame) {
	if s.Source == nil {
		return
	}
	for _, cmd := range s.Source.Poll() {
		frame.Commands.Push(cmd)
	}
}

// GravitySystem queues a gravity step each time Interval of frame time has
// elapsed. The timer is re-armed from zero after every step.
type GravitySystem struct {
	Interval time.Duration
	Paused   bool

	elapsed time.Duration
}

func (s *GravitySystem) Execute(frame *Frame) {
	if s.Paused {
		return
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	s.elapsed += time.Duration(math.Round(frame.DeltaTime * float64(time.Second)))
	if s.elapsed < interval {
		return
	}
	s.elapsed = 0
	frame.Commands.Tick()
}

// Rearm restarts the gravity timer.
func (s *GravitySystem) Rearm() {
	s.elapsed = 0
}
