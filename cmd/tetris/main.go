// Command tetris plays the game in an Ebiten window.
package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file. Overrides "+config.EnvConfigPath+".")
	envFile := flag.String("env", ".env", "Optional dotenv file to load before reading the environment.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui debug windows.")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *configPath != "" {
		if err := os.Setenv(config.EnvConfigPath, *configPath); err != nil {
			logger.WithError(err).Fatal("failed to set " + config.EnvConfigPath)
		}
	}
	cfg, err := config.FromEnv(*envFile)
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	logger.SetLevel(cfg.Level())

	bindings, err := cfg.Bindings()
	if err != nil {
		logger.WithError(err).Fatal("invalid key bindings")
	}
	kb, err := newKeyboard(bindings)
	if err != nil {
		logger.WithError(err).Fatal("invalid key bindings")
	}

	e := engine.New(cfg.EngineConfig())
	session := loop.NewSession(logger)
	log := session.Logger()

	scheduler := loop.NewScheduler(e, session)
	gravity := &loop.GravitySystem{Interval: cfg.TickInterval}
	scheduler.Register(&loop.InputSystem{Source: kb})
	scheduler.Register(gravity)

	width, height := screenSize(cfg.Cols, cfg.Rows, cfg.CellSize)
	game := &Game{
		engine:    e,
		scheduler: scheduler,
		gravity:   gravity,
		cellSize:  cfg.CellSize,
		log:       log,
	}

	if *debug {
		game.imgui = debugui_ebiten.NewImguiBackend("Tetris (debug)", width+700, max(height, 600))
		ui := debugui.New(scheduler, gravity)
		kb.capture = &ui.InputState
		scheduler.Register(ui)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Tetris")
	}

	log.WithFields(logrus.Fields{
		"cols":     cfg.Cols,
		"rows":     cfg.Rows,
		"interval": cfg.TickInterval,
		"debug":    *debug,
	}).Info("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game exited")
	}

	log.WithFields(logrus.Fields{
		"games": session.Games,
		"best":  session.BestScore,
	}).Info("bye")
}
