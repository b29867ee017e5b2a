// Package debugui provides Dear ImGui inspection windows for a running game.
// Windows are drawn by ImguiSystem, a loop.System that defers their render
// functions until the frame's commands have been applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/loop"
)

// ImguiItem holds a Dear ImGui render function drawn once per frame.
type ImguiItem struct {
	Render func(frame *loop.Frame)
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Frontends check it before forwarding key presses to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the input capture state and queues every item's render
// function at the end of the frame.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

func (i *ImguiSystem) Add(render func(frame *loop.Frame)) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

func (i *ImguiSystem) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Commands.Defer(func() {
			item.Render(frame)
		})
	}
}

// New builds an ImguiSystem with the board, performance and game statistics
// windows.
func New(scheduler *loop.Scheduler, gravity *loop.GravitySystem) *ImguiSystem {
	board := NewBoardInspector(gravity)
	perf := NewPerformanceStats(scheduler, 120)
	game := NewGameStats()

	sys := &ImguiSystem{}
	sys.Add(board.Render)
	sys.Add(perf.Render)
	sys.Add(game.Render)
	return sys
}
