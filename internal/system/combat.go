// internal/system/combat.go
package system

import (
	"math"

	"go-season-defense/internal/component"
	"go-season-defense/internal/entity"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// CombatSystem управляет атакой башен: перезарядка, выбор ближайшей цели, выстрел.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update возвращает число выпущенных снарядов
func (s *CombatSystem) Update(deltaTime float64) int {
	enemies := s.ecs.EnemyList()
	fired := 0

	for _, id := range s.ecs.TowerList() {
		tower := s.ecs.Tower(id)
		pos := s.ecs.Position(id)
		if tower == nil || pos == nil {
			continue
		}

		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}
		tower.Cooldown += tower.FireInterval
		if tower.Cooldown <= 0 {
			tower.Cooldown = tower.FireInterval
		}

		// цель не запоминается: каждый выстрел ищет ближайшего заново
		target, dist, ok := s.nearestEnemy(pos.Vec(), enemies)
		if !ok || dist > tower.Range {
			continue
		}
		s.ecs.SpawnBullet(pos.Vec(), component.Bullet{
			Target: target,
			Damage: tower.Damage,
			Speed:  tower.BulletSpeed,
		})
		fired++
	}
	return fired
}

func (s *CombatSystem) nearestEnemy(from r2.Vec, enemies []ecs.Entity) (ecs.Entity, float64, bool) {
	var (
		best     ecs.Entity
		bestDist = math.Inf(1)
		found    bool
	)
	for _, id := range enemies {
		pos := s.ecs.Position(id)
		if pos == nil {
			continue
		}
		if d := r2.Norm(r2.Sub(pos.Vec(), from)); d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	return best, bestDist, found
}
