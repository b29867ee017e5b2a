package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/sirupsen/logrus"
)

// Game implements ebiten.Game on top of a loop scheduler. Ebiten calls
// Update from a single goroutine, so the engine is only touched there and
// in Draw.
type Game struct {
	engine    *engine.Engine
	scheduler *loop.Scheduler
	gravity   *loop.GravitySystem
	imgui     *debugui_ebiten.ImguiBackend
	cellSize  int
	log       logrus.FieldLogger
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Info("restart")
		g.engine.Reset()
		g.gravity.Rearm()
	}

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawBoard(screen)
	g.drawSidebar(screen)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenSize(g.engine.Cols(), g.engine.Rows(), g.cellSize)
}
