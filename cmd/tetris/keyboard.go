package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/debugui"
	"github.com/plus3/tetris/engine"
)

// lookupKey finds an ebiten key by its name, ignoring case.
func lookupKey(name string) (ebiten.Key, bool) {
	name = strings.TrimSpace(name)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

type binding struct {
	key ebiten.Key
	cmd engine.Command
}

// keyboard is a loop.InputSource reporting bound keys pressed this tick.
type keyboard struct {
	bindings []binding
	capture  *debugui.ImguiInputState
}

func newKeyboard(keys map[string]engine.Command) (*keyboard, error) {
	kb := &keyboard{}
	for name, cmd := range keys {
		key, ok := lookupKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		kb.bindings = append(kb.bindings, binding{key: key, cmd: cmd})
	}
	return kb, nil
}

func (kb *keyboard) Poll() []engine.Command {
	if kb.capture != nil && kb.capture.WantCaptureKeyboard {
		return nil
	}

	var cmds []engine.Command
	for _, b := range kb.bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
