// internal/system/movement.go
package system

import (
	"math"

	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"
	"go-season-defense/internal/interfaces"
	"go-season-defense/internal/logger"
	"go-season-defense/pkg/gridmap"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// MovementSystem ведёт врагов по полю потока
type MovementSystem struct {
	ecs       *entity.ECS
	game      interfaces.GameContext
	rng       interfaces.Random
	cellSize  float64
	threshold float64
	fallback  gridmap.Cell
}

func NewMovementSystem(ecs *entity.ECS, game interfaces.GameContext, rng interfaces.Random, cfg *config.Config) *MovementSystem {
	return &MovementSystem{
		ecs:       ecs,
		game:      game,
		rng:       rng,
		cellSize:  cfg.Map.CellSize,
		threshold: cfg.Enemy.ArrivalThreshold,
		fallback:  cfg.Map.FallbackCell,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyList() {
		pos := s.ecs.Position(id)
		enemy := s.ecs.Enemy(id)
		if pos == nil || enemy == nil {
			continue
		}

		delta := r2.Sub(enemy.Destination, pos.Vec())
		dist := r2.Norm(delta)
		if dist > s.threshold {
			// шаг не длиннее оставшегося пути: без перелёта и деления на ноль
			step := math.Min(enemy.Speed*deltaTime, dist)
			pos.Set(r2.Add(pos.Vec(), r2.Scale(step/dist, delta)))
			continue
		}

		enemy.Destination = s.nextDestination(pos.X, pos.Y)
	}
}

// nextDestination — центр следующей клетки маршрута со случайным смещением
// до четверти клетки, чтобы враги не шли одной колонной.
func (s *MovementSystem) nextDestination(x, y float64) r2.Vec {
	cell := gridmap.CellAt(x, y, s.cellSize)
	next, ok := s.game.GetFlowField().Next(cell)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"cell":     cell,
			"fallback": s.fallback,
		}).Debug("cell has no route, using fallback")
		next = s.fallback
	}

	cx, cy := next.Center(s.cellSize)
	jitter := s.cellSize / 4
	return r2.Vec{
		X: cx + s.rng.Jitter(jitter),
		Y: cy + s.rng.Jitter(jitter),
	}
}
