// internal/system/player_system.go
package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// PlayerIntent is the already debounced input of one tick.
type PlayerIntent struct {
	Move      geom.Vec2 // each axis in [-1, 1]
	Boost     bool      // held
	Duplicate bool      // held
}

// PlayerSystem turns input intents into player movement, boosts and ally
// spawns.
type PlayerSystem struct {
	ecs    *entity.ECS
	cfg    *config.Config
	logger *zap.Logger

	boostHeld bool
}

func NewPlayerSystem(ecs *entity.ECS, cfg *config.Config, logger *zap.Logger) *PlayerSystem {
	ecs.Charges.BoostMax = cfg.Boost.MaxCharge
	ecs.Charges.DuplicationMax = cfg.Duplication.MaxCharge
	return &PlayerSystem{
		ecs:    ecs,
		cfg:    cfg,
		logger: logger.Named("player"),
	}
}

func (s *PlayerSystem) Update(deltaTime float64, intent PlayerIntent) {
	charges := s.ecs.Charges

	released := s.boostHeld && !intent.Boost
	s.boostHeld = intent.Boost
	if intent.Boost {
		charges.Boost = math.Min(charges.BoostMax, charges.Boost+deltaTime*s.cfg.Boost.ChargeRate)
	}

	spawnAlly := false
	if intent.Duplicate {
		charges.Duplication += deltaTime * s.cfg.Duplication.ChargeRate
		if charges.Duplication >= charges.DuplicationMax {
			charges.Duplication = 0
			spawnAlly = true
		}
	} else {
		charges.Duplication = 0
	}

	for _, id := range entity.SortedIDs(s.ecs.Players) {
		params, speed := s.ecs.ActionParams[id], s.ecs.Speeds[id]
		if params == nil || speed == nil {
			continue
		}
		if released {
			params.RemainingSecs = s.cfg.Boost.BaseSecs + params.ExtraSecsPerBoostLevel*charges.Boost
			params.BoostedSpeed = s.cfg.Boost.BaseSpeed + params.ExtraSpeedPerBoostLevel*charges.Boost
		}

		if params.RemainingSecs >= 0 {
			speed.Current = params.BoostedSpeed
			params.RemainingSecs -= deltaTime
		} else {
			speed.Current = speed.Default
			// replicating slows the cell down
			if intent.Duplicate && !spawnAlly {
				speed.Current = speed.Default / 2
			}
		}

		if vel, ok := s.ecs.Velocities[id]; ok {
			move := geom.V(utils.Clamp(intent.Move.X, -1, 1), utils.Clamp(intent.Move.Y, -1, 1))
			vel.Value = move.NormalizeOrZero().Scale(speed.Current)
		}

		if spawnAlly {
			s.spawnAlly(id)
		}
	}
	if released {
		charges.Boost = 0
	}
}

func (s *PlayerSystem) spawnAlly(playerID types.EntityID) {
	tr, ok := s.ecs.Transforms[playerID]
	if !ok {
		return
	}
	ally := SpawnAlly(s.ecs, s.cfg.Ally, tr.Position)
	s.ecs.Emit(event.Event{Type: event.AllySpawned, Data: ally})
	s.logger.Debug("ally spawned", zap.Uint64("ally", uint64(ally)))
}
