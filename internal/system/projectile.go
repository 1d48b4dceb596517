// internal/system/projectile.go
package system

import (
	"math"

	"go-season-defense/internal/entity"

	"gonum.org/v1/gonum/spatial/r2"
)

// ProjectileSystem ведёт снаряды к текущей позиции цели и наносит урон при касании
type ProjectileSystem struct {
	ecs             *entity.ECS
	damage          *DamageSystem
	contactDistance float64
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem, contactDistance float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		damage:          damage,
		contactDistance: contactDistance,
	}
}

// Update возвращает число попаданий
func (s *ProjectileSystem) Update(deltaTime float64) int {
	hits := 0
	for _, id := range s.ecs.BulletList() {
		bullet := s.ecs.Bullet(id)
		pos := s.ecs.Position(id)
		if bullet == nil || pos == nil {
			continue
		}

		// Цель пропала — снаряд исчезает без эффекта
		targetPos := s.ecs.Position(bullet.Target)
		if targetPos == nil {
			s.ecs.MarkDead(id)
			continue
		}

		delta := r2.Sub(targetPos.Vec(), pos.Vec())
		dist := r2.Norm(delta)
		if dist > s.contactDistance {
			step := math.Min(bullet.Speed*deltaTime, dist)
			pos.Set(r2.Add(pos.Vec(), r2.Scale(step/dist, delta)))
			dist -= step
		}
		if dist > s.contactDistance {
			continue
		}

		s.damage.ApplyDamage(bullet.Target, bullet.Damage)
		s.ecs.MarkDead(id)
		hits++
	}
	return hits
}
