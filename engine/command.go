package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for names outside the
// command set.
var ErrUnknownCommand = errors.New("unknown command")

// Command is an abstract player input, independent of any input device.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
	CommandHardDrop
)

// Commands lists every player command.
var Commands = []Command{
	CommandMoveLeft,
	CommandMoveRight,
	CommandSoftDrop,
	CommandRotate,
	CommandHardDrop,
}

var commandNames = map[Command]string{
	CommandNone:      "none",
	CommandMoveLeft:  "move_left",
	CommandMoveRight: "move_right",
	CommandSoftDrop:  "soft_drop",
	CommandRotate:    "rotate",
	CommandHardDrop:  "hard_drop",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a command name such as "move_left" to its Command.
// Matching ignores case and surrounding space.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Commands {
		if commandNames[c] == name {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Apply runs cmd against the engine. Unrecognized commands do nothing.
func (e *Engine) Apply(cmd Command) StepResult {
	switch cmd {
	case CommandMoveLeft:
		return StepResult{Moved: e.MoveLeft()}
	case CommandMoveRight:
		return StepResult{Moved: e.MoveRight()}
	case CommandSoftDrop:
		return e.SoftDrop()
	case CommandRotate:
		return StepResult{Moved: e.Rotate()}
	case CommandHardDrop:
		return e.HardDrop()
	}
	return StepResult{}
}
