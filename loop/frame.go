package loop

import "github.com/plus3/tetris/engine"

// System is one stage of a frame. Systems read the engine through the frame
// and queue their changes on frame.Commands rather than mutating it directly.
type System interface {
	Execute(frame *Frame)
}

type Frame struct {
	DeltaTime float64
	Engine    *engine.Engine
	Commands  *Commands
	Session   *Session
}

func newFrame(dt float64, e *engine.Engine, session *Session) *Frame {
	return &Frame{
		DeltaTime: dt,
		Engine:    e,
		Commands:  newCommands(),
		Session:   session,
	}
}
