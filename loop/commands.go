package loop

import "github.com/plus3/tetris/engine"

// Commands buffers engine operations queued by systems during a frame. They
// are applied in queue order when the frame is flushed, so every system in a
// frame observes the same engine state.
type Commands struct {
	ops []op
}

type opKind int

const (
	opCommand opKind = iota
	opTick
	opDefer
)

type op struct {
	kind opKind
	cmd  engine.Command
	fn   func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Push queues a player command.
func (c *Commands) Push(cmd engine.Command) {
	c.ops = append(c.ops, op{kind: opCommand, cmd: cmd})
}

// Tick queues a gravity step.
func (c *Commands) Tick() {
	c.ops = append(c.ops, op{kind: opTick})
}

// Defer queues a function to run after the preceding operations.
func (c *Commands) Defer(fn func()) {
	c.ops = append(c.ops, op{kind: opDefer, fn: fn})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.ops)
}

// Flush applies all queued operations to e in order, reporting each step
// result to observe, and resets the buffer.
func (c *Commands) Flush(e *engine.Engine, observe func(engine.Command, engine.StepResult)) {
	for _, o := range c.ops {
		switch o.kind {
		case opCommand:
			res := e.Apply(o.cmd)
			if observe != nil {
				observe(o.cmd, res)
			}
		case opTick:
			res := e.Tick()
			if observe != nil {
				observe(engine.CommandNone, res)
			}
		case opDefer:
			o.fn()
		}
	}

	c.ops = c.ops[:0]
}
