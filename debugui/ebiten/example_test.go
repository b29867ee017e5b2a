package ebiten_test

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
)

// Game implements ebiten.Game and draws the debug windows over the game.
type Game struct {
	scheduler    *loop.Scheduler
	imguiBackend *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.BeginFrame()

	// Execute all systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Tetris ImGui Example", 1280, 720)

	e := engine.New(engine.DefaultConfig())
	scheduler := loop.NewScheduler(e, nil)

	gravity := &loop.GravitySystem{Interval: loop.DefaultTickInterval}
	scheduler.Register(gravity)
	scheduler.Register(debugui.New(scheduler, gravity))

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: backend,
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
