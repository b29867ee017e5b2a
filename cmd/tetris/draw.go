package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/engine"
)

const (
	boardOffset   = 40
	sidebarWidth  = 160
	gameOverFlash = 2 * time.Second
)

var (
	backgroundColor = color.RGBA{R: 16, G: 16, B: 24, A: 255}
	borderColor     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	lockedColor     = color.RGBA{R: 110, G: 110, B: 130, A: 255}
	ghostColor      = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	gameOverColor   = color.RGBA{R: 200, G: 30, B: 30, A: 200}
)

var shapeColors = map[engine.ShapeKind]color.RGBA{
	engine.ShapeI: {R: 102, G: 191, B: 255, A: 255},
	engine.ShapeZ: {R: 230, G: 41, B: 55, A: 255},
	engine.ShapeS: {R: 0, G: 228, B: 48, A: 255},
	engine.ShapeT: {R: 200, G: 122, B: 255, A: 255},
	engine.ShapeL: {R: 255, G: 161, B: 0, A: 255},
	engine.ShapeJ: {R: 0, G: 121, B: 241, A: 255},
	engine.ShapeO: {R: 255, G: 203, B: 0, A: 255},
}

// screenSize returns the window size for a board of the given dimensions.
func screenSize(cols, rows, cellSize int) (int, int) {
	return cols*cellSize + 2*boardOffset + sidebarWidth, rows*cellSize + 2*boardOffset
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	size := float32(g.cellSize)
	px := float32(boardOffset + x*g.cellSize)
	py := float32(boardOffset + y*g.cellSize)
	vector.DrawFilledRect(screen, px, py, size, size, clr, false)
	vector.StrokeRect(screen, px, py, size, size, 1, backgroundColor, false)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	e := g.engine
	width := float32(e.Cols() * g.cellSize)
	height := float32(e.Rows() * g.cellSize)
	vector.StrokeRect(screen, boardOffset-2, boardOffset-2, width+4, height+4, 2, borderColor, false)

	for y, row := range e.Grid().Cells() {
		for x, filled := range row {
			if filled {
				g.drawCell(screen, x, y, lockedColor)
			}
		}
	}

	p := e.Piece()
	ghost := e.DropDistance()
	for cx, cy := range p.Shape.Cells() {
		x, y := p.X+cx, p.Y+cy+ghost
		if y >= 0 && ghost > 0 {
			g.drawCell(screen, x, y, ghostColor)
		}
	}
	for cx, cy := range p.Shape.Cells() {
		x, y := p.X+cx, p.Y+cy
		if y >= 0 {
			g.drawCell(screen, x, y, shapeColors[p.Kind])
		}
	}
}

func (g *Game) drawSidebar(screen *ebiten.Image) {
	e := g.engine
	session := g.scheduler.Session()
	x := boardOffset*2 + e.Cols()*g.cellSize

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", e.Score()), x, boardOffset)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST  %d", session.BestScore), x, boardOffset+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAMES %d", session.Games), x, boardOffset+40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", e.Stats().Lines()), x, boardOffset+60)
	ebitenutil.DebugPrintAt(screen, "R restart\nEsc quit", x, boardOffset+100)

	if !session.GameOverAt.IsZero() && time.Since(session.GameOverAt) < gameOverFlash {
		width := float32(e.Cols() * g.cellSize)
		mid := float32(boardOffset + e.Rows()*g.cellSize/2)
		vector.DrawFilledRect(screen, boardOffset, mid-20, width, 40, gameOverColor, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("GAME OVER  %d", session.LastScore), boardOffset+10, int(mid)-8)
	}
}
