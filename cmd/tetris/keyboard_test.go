package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"ArrowLeft", ebiten.KeyArrowLeft},
		{"arrowright", ebiten.KeyArrowRight},
		{" Space ", ebiten.KeySpace},
		{"A", ebiten.KeyA},
	}
	for _, tt := range tests {
		got, ok := lookupKey(tt.name)
		if assert.True(t, ok, tt.name) {
			assert.Equal(t, tt.want, got, tt.name)
		}
	}

	_, ok := lookupKey("NoSuchKey")
	assert.False(t, ok)
}

func TestNewKeyboardDefaultBindings(t *testing.T) {
	bindings, err := config.Default().Bindings()
	require.NoError(t, err)

	kb, err := newKeyboard(bindings)
	require.NoError(t, err)
	assert.Len(t, kb.bindings, len(bindings))

	for _, b := range kb.bindings {
		if b.key == ebiten.KeySpace {
			assert.Equal(t, engine.CommandHardDrop, b.cmd)
		}
	}
}

func TestNewKeyboardUnknownKey(t *testing.T) {
	_, err := newKeyboard(map[string]engine.Command{"Bogus": engine.CommandRotate})
	assert.Error(t, err)
}

func TestScreenSize(t *testing.T) {
	w, h := screenSize(10, 20, 30)
	assert.Equal(t, 10*30+2*boardOffset+sidebarWidth, w)
	assert.Equal(t, 20*30+2*boardOffset, h)
}
