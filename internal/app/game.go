// internal/app/game.go
package app

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/defs"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/system"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
)

// Intent is the input of one tick.
type Intent = system.PlayerIntent

// Game owns one simulation: the entity arena, its configuration, the random
// source and every system, run in a fixed phase order by Step.
type Game struct {
	ECS             *entity.ECS
	Config          *config.Config
	Level           defs.LevelDefinition
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Queue           *event.CollisionQueue
	PlayerID        types.EntityID

	PlayerSystem       *system.PlayerSystem
	MovementSystem     *system.MovementSystem
	CollisionSystem    *system.CollisionSystem
	ContactEventSystem *system.ContactEventSystem
	EncounterSystem    *system.EncounterSystem
	TargetingSystem    *system.TargetingSystem
	InfectionSystem    *system.InfectionSystem
	WaveSystem         *system.WaveSystem

	logger      *zap.Logger
	stepEvents  []event.Event
	spawnerLost bool
}

// NewGame validates the configuration and level, lays the level out and
// checks that exactly one wave spawner exists.
func NewGame(cfg config.Config, level defs.LevelDefinition, seed int64, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := level.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid level")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := newGame(&cfg, seed, logger)
	g.Level = level
	g.setupLevel(level)

	if _, err := g.ECS.WaveSpawner(); err != nil {
		return nil, errors.Wrap(err, "level setup")
	}
	g.flushEvents()
	g.stepEvents = g.stepEvents[:0]

	logger.Info("game created",
		zap.String("level", level.Name),
		zap.Int64("seed", g.Rng.Seed()),
		zap.Int("entities", g.ECS.Count()),
	)
	return g, nil
}

func newGame(cfg *config.Config, seed int64, logger *zap.Logger) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	queue := event.NewCollisionQueue()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:                ecs,
		Config:             cfg,
		Rng:                rng,
		EventDispatcher:    dispatcher,
		Queue:              queue,
		PlayerSystem:       system.NewPlayerSystem(ecs, cfg, logger),
		MovementSystem:     system.NewMovementSystem(ecs),
		CollisionSystem:    system.NewCollisionSystem(ecs, cfg.Collision),
		ContactEventSystem: system.NewContactEventSystem(ecs, queue),
		EncounterSystem:    system.NewEncounterSystem(ecs, queue, cfg, logger),
		TargetingSystem:    system.NewTargetingSystem(ecs, cfg, rng),
		InfectionSystem:    system.NewInfectionSystem(ecs, cfg, rng, logger),
		WaveSystem:         system.NewWaveSystem(ecs, cfg, rng, logger),
		logger:             logger,
	}
	dispatcher.Subscribe(event.EntityDestroyed, g.TargetingSystem)
	return g
}

// Step advances the simulation by deltaTime seconds and returns the lifecycle
// events raised during the tick, in the order they happened.
func (g *Game) Step(deltaTime float64, intent Intent) []event.Event {
	g.stepEvents = g.stepEvents[:0]

	// 1. input and integration
	g.PlayerSystem.Update(deltaTime, intent)
	g.MovementSystem.Update(deltaTime)

	// 2. contacts
	g.CollisionSystem.Update()

	// 3. encounters, committed as one batch
	g.ContactEventSystem.Update()
	g.EncounterSystem.Update()
	g.commit()

	// 4. seek relations
	g.TargetingSystem.Update(deltaTime)

	// 5. infections
	g.InfectionSystem.Update(deltaTime)
	g.commit()

	// 6. waves
	spawner, err := g.ECS.WaveSpawner()
	if err != nil {
		if !g.spawnerLost {
			g.logger.Error("wave spawner unavailable", zap.Error(err))
			g.spawnerLost = true
		}
	} else {
		g.WaveSystem.Update(deltaTime, spawner)
	}

	g.ECS.GameTime += deltaTime
	g.flushEvents()

	out := make([]event.Event, len(g.stepEvents))
	copy(out, g.stepEvents)
	return out
}

// commit removes every entity marked for destruction and tells the listeners.
func (g *Game) commit() {
	g.ECS.RemoveMarkedEntities()
	g.flushEvents()
}

func (g *Game) flushEvents() {
	for _, e := range g.ECS.DrainEvents() {
		g.stepEvents = append(g.stepEvents, e)
		g.EventDispatcher.Dispatch(e)
	}
}

// Subscribe registers a listener for lifecycle events.
func (g *Game) Subscribe(eventType event.EventType, listener event.Listener) {
	g.EventDispatcher.Subscribe(eventType, listener)
}

// GameTime returns the simulated time in seconds.
func (g *Game) GameTime() float64 {
	return g.ECS.GameTime
}
