// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/app"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/defs"
	"github.com/WChurchill/qualified-immunity/internal/interfaces"
	"github.com/WChurchill/qualified-immunity/internal/logging"
	"github.com/WChurchill/qualified-immunity/internal/state"
)

const startFromGame = false // true skips the menu

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML config file, defaults when empty")
	levelPath := flag.String("level", "", "YAML level file, defaults when empty")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	flag.Parse()

	logger, err := logging.New(*logLevel, logging.EncodingConsole)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Fatal("load config", zap.Error(err))
		}
	}
	level := defs.DefaultLevel()
	if *levelPath != "" {
		if level, err = defs.LoadLevel(*levelPath); err != nil {
			logger.Fatal("load level", zap.Error(err))
		}
	}

	newGame := func() (interfaces.Simulation, error) {
		return app.NewGame(cfg, level, *seed, logger)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sim, err := newGame()
		if err != nil {
			logger.Fatal("create game", zap.Error(err))
		}
		sm.SetState(state.NewGameState(sm, sim, logger))
	} else {
		sm.SetState(state.NewMenuState(sm, newGame, logger))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Qualified Immunity")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
