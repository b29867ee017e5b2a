package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		want Command
	}{
		{"move_left", CommandMoveLeft},
		{"move_right", CommandMoveRight},
		{"soft_drop", CommandSoftDrop},
		{"rotate", CommandRotate},
		{" Hard_Drop ", CommandHardDrop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseCommand("hold")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
	_, err = ParseCommand("none")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandString(t *testing.T) {
	for _, c := range Commands {
		parsed, err := ParseCommand(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "Command(99)", Command(99).String())
}

func TestApply(t *testing.T) {
	e := newTestEngine(1)
	place(e, ShapeOf(ShapeT), 4, 5)

	assert.True(t, e.Apply(CommandMoveLeft).Moved)
	assert.Equal(t, 3, e.Piece().X)

	assert.True(t, e.Apply(CommandMoveRight).Moved)
	assert.Equal(t, 4, e.Piece().X)

	assert.True(t, e.Apply(CommandSoftDrop).Moved)
	assert.Equal(t, 6, e.Piece().Y)

	assert.True(t, e.Apply(CommandRotate).Moved)
	assert.Equal(t, 3, e.Piece().Shape.Rows())

	res := e.Apply(CommandHardDrop)
	assert.True(t, res.Locked)
	assert.Equal(t, 11, res.Dropped)

	assert.Equal(t, StepResult{}, e.Apply(CommandNone))
	assert.Equal(t, StepResult{}, e.Apply(Command(42)))
}
