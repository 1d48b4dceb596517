// internal/system/player_system.go
package system

import (
	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"
	"go-season-defense/internal/interfaces"
	"go-season-defense/internal/input"
	"go-season-defense/pkg/gridmap"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// PlayerSystem выполняет действия игрока, разрешённые текущим сезоном,
// и считает уничтоженных врагов.
type PlayerSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	area            *AreaSystem
	eventDispatcher *event.Dispatcher
	cfg             *config.Config

	kills int
}

func NewPlayerSystem(ecs *entity.ECS, game interfaces.GameContext, area *AreaSystem, eventDispatcher *event.Dispatcher, cfg *config.Config) *PlayerSystem {
	s := &PlayerSystem{
		ecs:             ecs,
		game:            game,
		area:            area,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
	eventDispatcher.Subscribe(s, event.EnemyKilled)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	if e.Type == event.EnemyKilled {
		s.kills++
	}
}

// Kills — сколько врагов уничтожено уроном
func (s *PlayerSystem) Kills() int {
	return s.kills
}

// Update применяет ввод кадра:
// в сезон строительства левая кнопка ставит башню, правая — препятствие,
// в сезон лечения левая кнопка лечит.
func (s *PlayerSystem) Update(frame input.Frame, season component.SeasonKind) {
	if !frame.CursorInField {
		return
	}
	switch {
	case season.AllowsBuilding():
		if frame.LeftReleased {
			s.PlaceTower(frame.Cursor)
		}
		if frame.RightPressed {
			s.PlaceObstacle(frame.Cursor)
		}
	case season.AllowsHealing():
		if frame.LeftReleased {
			s.Heal(frame.Cursor)
		}
	}
}

// PlaceTower ставит башню в точку. Постановка бьёт по площади;
// новая башня появляется после удара и его не получает.
func (s *PlayerSystem) PlaceTower(at r2.Vec) (ecs.Entity, bool) {
	if !s.inMap(at) {
		return ecs.Entity{}, false
	}
	s.area.Damage(at, s.cfg.Area.PlacementDamage)

	tc := s.cfg.Tower
	id := s.ecs.SpawnTower(at, component.NewHealth(tc.Health), component.Tower{
		Level:        tc.Level,
		Range:        tc.Range,
		Damage:       tc.Damage,
		BulletSpeed:  s.cfg.Bullet.Speed,
		FireInterval: tc.FireInterval,
		Cooldown:     tc.FireInterval,
	})
	s.eventDispatcher.Emit(event.TowerPlaced, event.EntityData{Entity: id, Position: at})
	return id, true
}

// PlaceObstacle ставит препятствие в центр клетки под точкой.
// Карта и поле потока не меняются.
func (s *PlayerSystem) PlaceObstacle(at r2.Vec) (ecs.Entity, bool) {
	if !s.inMap(at) {
		return ecs.Entity{}, false
	}
	cell := gridmap.CellAt(at.X, at.Y, s.cfg.Map.CellSize)
	cx, cy := cell.Center(s.cfg.Map.CellSize)
	center := r2.Vec{X: cx, Y: cy}

	s.area.Damage(center, s.cfg.Area.PlacementDamage)
	id := s.ecs.SpawnObstacle(center, component.Obstacle{Cell: cell})
	s.eventDispatcher.Emit(event.ObstaclePlaced, event.EntityData{Entity: id, Position: center})
	return id, true
}

// Heal лечит по площади вокруг точки. Возвращает число вылеченных.
func (s *PlayerSystem) Heal(at r2.Vec) int {
	return s.area.Heal(at, s.cfg.Area.HealAmount)
}

func (s *PlayerSystem) inMap(at r2.Vec) bool {
	cell := gridmap.CellAt(at.X, at.Y, s.cfg.Map.CellSize)
	return s.game.GetMap().InMap(cell)
}
