package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
)

const (
	cellEmpty  = '.'
	cellLocked = '#'
	cellPiece  = '@'
	cellGhost  = '+'
)

// BoardInspector shows the grid as text, the active piece and manual
// controls for stepping the engine.
type BoardInspector struct {
	gravity   *loop.GravitySystem
	showGhost bool
}

func NewBoardInspector(gravity *loop.GravitySystem) *BoardInspector {
	return &BoardInspector{
		gravity:   gravity,
		showGhost: true,
	}
}

func (b *BoardInspector) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 560), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	e := frame.Engine
	p := e.Piece()

	imgui.Text(fmt.Sprintf("Score: %d", e.Score()))
	imgui.Text(fmt.Sprintf("Piece: %s at (%d, %d) %dx%d", p.Kind, p.X, p.Y, p.Shape.Cols(), p.Shape.Rows()))
	imgui.Text(fmt.Sprintf("Drop distance: %d", e.DropDistance()))
	imgui.Separator()

	imgui.Checkbox("Ghost", &b.showGhost)
	if b.gravity != nil {
		imgui.SameLine()
		imgui.Checkbox("Pause gravity", &b.gravity.Paused)
	}

	for _, row := range BoardRows(e, b.showGhost) {
		imgui.Text(row)
	}

	imgui.Separator()
	for i, cmd := range engine.Commands {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.Button(commandLabel(cmd)) {
			frame.Session.Observe(cmd, e.Apply(cmd))
		}
	}
	if imgui.Button("Tick") {
		frame.Session.Observe(engine.CommandNone, e.Tick())
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		e.Reset()
		if b.gravity != nil {
			b.gravity.Rearm()
		}
	}

	imgui.End()
}

func commandLabel(cmd engine.Command) string {
	switch cmd {
	case engine.CommandMoveLeft:
		return "<"
	case engine.CommandMoveRight:
		return ">"
	case engine.CommandSoftDrop:
		return "v"
	case engine.CommandRotate:
		return "R"
	case engine.CommandHardDrop:
		return "Drop"
	}
	return cmd.String()
}

// BoardRows renders the board one string per row: locked cells as '#', the
// active piece as '@', its landing position as '+' when ghost is set, and
// empty cells as '.'.
func BoardRows(e *engine.Engine, ghost bool) []string {
	grid := e.Grid()
	p := e.Piece()

	cells := make([][]rune, grid.Rows())
	for y := range cells {
		cells[y] = make([]rune, grid.Cols())
		for x := range cells[y] {
			if grid.Filled(x, y) {
				cells[y][x] = cellLocked
			} else {
				cells[y][x] = cellEmpty
			}
		}
	}

	paint := func(dy int, r rune) {
		for cx, cy := range p.Shape.Cells() {
			x, y := p.X+cx, p.Y+cy+dy
			if grid.InBounds(x, y) {
				cells[y][x] = r
			}
		}
	}
	if ghost {
		paint(e.DropDistance(), cellGhost)
	}
	paint(0, cellPiece)

	rows := make([]string, len(cells))
	for y, row := range cells {
		rows[y] = string(row)
	}
	return rows
}
