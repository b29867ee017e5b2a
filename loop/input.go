package loop

import "github.com/plus3/tetris/engine"

// InputSource yields the commands issued since the previous poll.
type InputSource interface {
	Poll() []engine.Command
}

// InputFunc adapts a function to InputSource.
type InputFunc func() []engine.Command

func (f InputFunc) Poll() []engine.Command {
	return f()
}

// QueueSource is an InputSource fed from other goroutines. Submit may be
// called concurrently; Poll must only be called by the loop that owns the
// engine.
type QueueSource struct {
	ch chan engine.Command
}

// NewQueueSource creates a queue holding up to size pending commands.
func NewQueueSource(size int) *QueueSource {
	return &QueueSource{ch: make(chan engine.Command, size)}
}

// Submit enqueues cmd without blocking. It returns false when the queue is
// full and the command was dropped.
func (q *QueueSource) Submit(cmd engine.Command) bool {
	select {
	case q.ch <- cmd:
		return true
	default:
		return false
	}
}

// Poll drains every pending command.
func (q *QueueSource) Poll() []engine.Command {
	var cmds []engine.Command
	for {
		select {
		case cmd := <-q.ch:
			cmds = append(cmds, cmd)
		default:
			return cmds
		}
	}
}
