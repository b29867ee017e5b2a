package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
)

// GameStats shows session totals, spawns per shape and the line clear
// breakdown.
type GameStats struct{}

func NewGameStats() *GameStats {
	return &GameStats{}
}

func (g *GameStats) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 250), imgui.CondOnce)

	if !imgui.BeginV("Game Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := frame.Session
	sum := frame.Engine.Stats().Summary()

	imgui.Text(fmt.Sprintf("Session: %s", session.ID))
	imgui.Text(fmt.Sprintf("Uptime: %s", time.Since(session.Started).Truncate(time.Second)))
	imgui.Text(fmt.Sprintf("Games: %d | Best: %d | Last: %d", session.Games, session.BestScore, session.LastScore))
	imgui.Text(fmt.Sprintf("Locks: %d | Lines: %d", sum.Locks, sum.Lines))
	if imgui.Button("Reset stats") {
		frame.Engine.Stats().Reset()
	}
	imgui.Separator()

	maxSpawns := 0
	for _, n := range sum.Spawns {
		maxSpawns = max(maxSpawns, n)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Shape")
		imgui.TableSetupColumn("Spawned")
		imgui.TableHeadersRow()

		for _, kind := range engine.ShapeKinds {
			n := sum.Spawns[kind]

			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(kind.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", n))

			if maxSpawns > 0 {
				barWidth := float32(n) / float32(maxSpawns) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	if imgui.TreeNodeStr("Lines per lock") {
		for n, count := range sum.LocksByClear {
			imgui.BulletText(fmt.Sprintf("%d: %d", n, count))
		}
		imgui.TreePop()
	}

	imgui.End()
}
