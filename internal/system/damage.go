// internal/system/damage.go
package system

import (
	"math"

	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"

	"github.com/mlange-42/ark/ecs"
)

// DamageSystem — единственное место, где меняется здоровье.
// Уничтоженная сущность помечается к удалению; само удаление — в конце тика.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// ApplyDamage наносит урон и возвращает true, если сущность уничтожена.
// Здоровье не уходит ниже нуля.
func (s *DamageSystem) ApplyDamage(id ecs.Entity, amount float64) bool {
	if amount <= 0 {
		return false
	}
	health := s.ecs.Health(id)
	if health == nil {
		return false
	}

	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	if s.ecs.IsBase(id) {
		s.eventDispatcher.Emit(event.BaseDamaged, event.DamageData{Amount: amount, Remaining: health.Value})
	}
	if health.Value > 0 {
		return false
	}

	s.destroy(id)
	return true
}

// ApplyHeal лечит не выше начального здоровья. Возвращает true, если здоровье изменилось.
func (s *DamageSystem) ApplyHeal(id ecs.Entity, amount float64) bool {
	if amount <= 0 {
		return false
	}
	health := s.ecs.Health(id)
	if health == nil || health.Value >= health.Max {
		return false
	}
	health.Value = math.Min(health.Value+amount, health.Max)
	return true
}

func (s *DamageSystem) destroy(id ecs.Entity) {
	data := event.EntityData{Entity: id}
	if pos := s.ecs.Position(id); pos != nil {
		data.Position = pos.Vec()
	}

	var eventType event.EventType
	switch {
	case s.ecs.Enemy(id) != nil:
		eventType = event.EnemyKilled
	case s.ecs.Tower(id) != nil:
		eventType = event.TowerDestroyed
	case s.ecs.IsBase(id):
		eventType = event.BaseDestroyed
	}

	if !s.ecs.MarkDead(id) {
		return
	}
	if eventType != "" {
		s.eventDispatcher.Emit(eventType, data)
	}
}

// FallOff — сила действия по площади на расстоянии dist.
// Ближе minDistance действует полная сила, дальше она спадает как
// base / (1 + e^-k * (dist - minDistance)). Радиус не ограничен.
func FallOff(dist, base, minDistance, k float64) float64 {
	if dist < minDistance {
		return base
	}
	return base / (1 + math.Exp(-k)*(dist-minDistance))
}
