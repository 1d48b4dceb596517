// internal/system/base.go
package system

import (
	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"

	"gonum.org/v1/gonum/spatial/r2"
)

// BaseSystem обрабатывает касание базы врагами:
// враг наносит базе контактный урон и исчезает.
type BaseSystem struct {
	ecs             *entity.ECS
	damage          *DamageSystem
	eventDispatcher *event.Dispatcher
}

func NewBaseSystem(ecs *entity.ECS, damage *DamageSystem, eventDispatcher *event.Dispatcher) *BaseSystem {
	return &BaseSystem{ecs: ecs, damage: damage, eventDispatcher: eventDispatcher}
}

// Update возвращает число врагов, дошедших до базы
func (s *BaseSystem) Update() int {
	reached := 0
	for _, baseID := range s.ecs.BaseList() {
		for _, id := range s.ecs.EnemyList() {
			base := s.ecs.Base(baseID)
			basePos := s.ecs.Position(baseID)
			if base == nil || basePos == nil {
				// база уничтожена этим же тиком
				break
			}
			pos := s.ecs.Position(id)
			enemy := s.ecs.Enemy(id)
			if pos == nil || enemy == nil {
				continue
			}
			if r2.Norm(r2.Sub(pos.Vec(), basePos.Vec())) > base.Radius {
				continue
			}

			contact := enemy.ContactDamage
			at := pos.Vec()
			if !s.ecs.MarkDead(id) {
				continue
			}
			reached++
			s.eventDispatcher.Emit(event.EnemyReachedBase, event.EntityData{Entity: id, Position: at})
			s.damage.ApplyDamage(baseID, contact)
		}
	}
	return reached
}
