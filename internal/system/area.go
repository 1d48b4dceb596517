// internal/system/area.go
package system

import (
	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// AreaSystem применяет действия по площади: урон при постановке и лечение.
// Действие задевает все башни, всех врагов и базу, без ограничения радиуса.
type AreaSystem struct {
	ecs         *entity.ECS
	damage      *DamageSystem
	minDistance float64
	k           float64
}

func NewAreaSystem(ecs *entity.ECS, damage *DamageSystem, cfg config.AreaConfig) *AreaSystem {
	return &AreaSystem{
		ecs:         ecs,
		damage:      damage,
		minDistance: cfg.MinDistance,
		k:           cfg.FalloffK,
	}
}

// Damage наносит урон со спадом от точки center. Возвращает число уничтоженных.
func (s *AreaSystem) Damage(center r2.Vec, amount float64) int {
	destroyed := 0
	for _, id := range s.targets() {
		if s.damage.ApplyDamage(id, s.amountAt(id, center, amount)) {
			destroyed++
		}
	}
	return destroyed
}

// Heal лечит со спадом от точки center. Возвращает число вылеченных.
func (s *AreaSystem) Heal(center r2.Vec, amount float64) int {
	healed := 0
	for _, id := range s.targets() {
		if s.damage.ApplyHeal(id, s.amountAt(id, center, amount)) {
			healed++
		}
	}
	return healed
}

func (s *AreaSystem) amountAt(id ecs.Entity, center r2.Vec, amount float64) float64 {
	pos := s.ecs.Position(id)
	if pos == nil {
		return 0
	}
	dist := r2.Norm(r2.Sub(pos.Vec(), center))
	return FallOff(dist, amount, s.minDistance, s.k)
}

// targets — все сущности со здоровьем: башни, враги, база
func (s *AreaSystem) targets() []ecs.Entity {
	targets := s.ecs.TowerList()
	targets = append(targets, s.ecs.EnemyList()...)
	return append(targets, s.ecs.BaseList()...)
}
