// internal/entity/ecs.go
package entity

import (
	"go-season-defense/internal/component"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// ECS — таблица сущностей сессии поверх ark.
// Дескрипторы ecs.Entity несут поколение, поэтому ссылка на удалённую
// сущность распознаётся за O(1) через Alive.
//
// Удаление отложенное: системы помечают сущности через MarkDead,
// а Cleanup в конце тика удаляет каждую ровно один раз.
type ECS struct {
	world *ecs.World

	Positions *ecs.Map[component.Position]
	Healths   *ecs.Map[component.Health]
	Enemies   *ecs.Map[component.Enemy]
	Towers    *ecs.Map[component.Tower]
	Bullets   *ecs.Map[component.Bullet]
	Bases     *ecs.Map[component.Base]
	Obstacles *ecs.Map[component.Obstacle]

	enemyMapper    *ecs.Map3[component.Position, component.Health, component.Enemy]
	towerMapper    *ecs.Map3[component.Position, component.Health, component.Tower]
	baseMapper     *ecs.Map3[component.Position, component.Health, component.Base]
	bulletMapper   *ecs.Map2[component.Position, component.Bullet]
	obstacleMapper *ecs.Map2[component.Position, component.Obstacle]

	enemyFilter    *ecs.Filter1[component.Enemy]
	towerFilter    *ecs.Filter1[component.Tower]
	bulletFilter   *ecs.Filter1[component.Bullet]
	baseFilter     *ecs.Filter1[component.Base]
	obstacleFilter *ecs.Filter1[component.Obstacle]

	dead      map[ecs.Entity]struct{}
	deadOrder []ecs.Entity
}

func NewECS() *ECS {
	w := ecs.NewWorld()
	return &ECS{
		world: w,

		Positions: ecs.NewMap[component.Position](w),
		Healths:   ecs.NewMap[component.Health](w),
		Enemies:   ecs.NewMap[component.Enemy](w),
		Towers:    ecs.NewMap[component.Tower](w),
		Bullets:   ecs.NewMap[component.Bullet](w),
		Bases:     ecs.NewMap[component.Base](w),
		Obstacles: ecs.NewMap[component.Obstacle](w),

		enemyMapper:    ecs.NewMap3[component.Position, component.Health, component.Enemy](w),
		towerMapper:    ecs.NewMap3[component.Position, component.Health, component.Tower](w),
		baseMapper:     ecs.NewMap3[component.Position, component.Health, component.Base](w),
		bulletMapper:   ecs.NewMap2[component.Position, component.Bullet](w),
		obstacleMapper: ecs.NewMap2[component.Position, component.Obstacle](w),

		enemyFilter:    ecs.NewFilter1[component.Enemy](w),
		towerFilter:    ecs.NewFilter1[component.Tower](w),
		bulletFilter:   ecs.NewFilter1[component.Bullet](w),
		baseFilter:     ecs.NewFilter1[component.Base](w),
		obstacleFilter: ecs.NewFilter1[component.Obstacle](w),

		dead: make(map[ecs.Entity]struct{}),
	}
}

// SpawnEnemy создаёт врага
func (e *ECS) SpawnEnemy(at r2.Vec, health component.Health, enemy component.Enemy) ecs.Entity {
	pos := component.PositionOf(at)
	return e.enemyMapper.NewEntity(&pos, &health, &enemy)
}

// SpawnTower создаёт башню
func (e *ECS) SpawnTower(at r2.Vec, health component.Health, tower component.Tower) ecs.Entity {
	pos := component.PositionOf(at)
	return e.towerMapper.NewEntity(&pos, &health, &tower)
}

// SpawnBase создаёт базу
func (e *ECS) SpawnBase(at r2.Vec, health component.Health, base component.Base) ecs.Entity {
	pos := component.PositionOf(at)
	return e.baseMapper.NewEntity(&pos, &health, &base)
}

// SpawnBullet создаёт снаряд
func (e *ECS) SpawnBullet(at r2.Vec, bullet component.Bullet) ecs.Entity {
	pos := component.PositionOf(at)
	return e.bulletMapper.NewEntity(&pos, &bullet)
}

// SpawnObstacle создаёт препятствие
func (e *ECS) SpawnObstacle(at r2.Vec, obstacle component.Obstacle) ecs.Entity {
	pos := component.PositionOf(at)
	return e.obstacleMapper.NewEntity(&pos, &obstacle)
}

// Exists — сущность существует в мире (возможно, уже помечена к удалению).
func (e *ECS) Exists(id ecs.Entity) bool {
	return !id.IsZero() && e.world.Alive(id)
}

// Alive — сущность существует и не помечена к удалению.
func (e *ECS) Alive(id ecs.Entity) bool {
	if !e.Exists(id) {
		return false
	}
	_, marked := e.dead[id]
	return !marked
}

// MarkDead помечает сущность к удалению. Возвращает false, если она уже
// помечена или не существует — так удаление происходит ровно один раз.
func (e *ECS) MarkDead(id ecs.Entity) bool {
	if !e.Alive(id) {
		return false
	}
	e.dead[id] = struct{}{}
	e.deadOrder = append(e.deadOrder, id)
	return true
}

// PendingRemovals — сколько сущностей ждут удаления
func (e *ECS) PendingRemovals() int {
	return len(e.deadOrder)
}

// Cleanup удаляет все помеченные сущности и возвращает их количество.
func (e *ECS) Cleanup() int {
	removed := 0
	for _, id := range e.deadOrder {
		if e.world.Alive(id) {
			e.world.RemoveEntity(id)
			removed++
		}
	}
	e.deadOrder = e.deadOrder[:0]
	clear(e.dead)
	return removed
}

// Position возвращает позицию живой сущности или nil
func (e *ECS) Position(id ecs.Entity) *component.Position {
	if !e.Alive(id) || !e.Positions.Has(id) {
		return nil
	}
	return e.Positions.Get(id)
}

// Health возвращает здоровье живой сущности или nil
func (e *ECS) Health(id ecs.Entity) *component.Health {
	if !e.Alive(id) || !e.Healths.Has(id) {
		return nil
	}
	return e.Healths.Get(id)
}

// Enemy возвращает компонент врага или nil
func (e *ECS) Enemy(id ecs.Entity) *component.Enemy {
	if !e.Alive(id) || !e.Enemies.Has(id) {
		return nil
	}
	return e.Enemies.Get(id)
}

// Tower возвращает компонент башни или nil
func (e *ECS) Tower(id ecs.Entity) *component.Tower {
	if !e.Alive(id) || !e.Towers.Has(id) {
		return nil
	}
	return e.Towers.Get(id)
}

// Bullet возвращает компонент снаряда или nil
func (e *ECS) Bullet(id ecs.Entity) *component.Bullet {
	if !e.Alive(id) || !e.Bullets.Has(id) {
		return nil
	}
	return e.Bullets.Get(id)
}

// Base возвращает компонент базы или nil
func (e *ECS) Base(id ecs.Entity) *component.Base {
	if !e.Alive(id) || !e.Bases.Has(id) {
		return nil
	}
	return e.Bases.Get(id)
}

// IsBase — является ли живая сущность базой
func (e *ECS) IsBase(id ecs.Entity) bool {
	return e.Alive(id) && e.Bases.Has(id)
}

// EnemyList возвращает живых врагов. Список — снимок: по нему можно
// безопасно помечать сущности к удалению.
func (e *ECS) EnemyList() []ecs.Entity {
	var out []ecs.Entity
	query := e.enemyFilter.Query()
	for query.Next() {
		out = e.appendAlive(out, query.Entity())
	}
	return out
}

// TowerList возвращает живые башни
func (e *ECS) TowerList() []ecs.Entity {
	var out []ecs.Entity
	query := e.towerFilter.Query()
	for query.Next() {
		out = e.appendAlive(out, query.Entity())
	}
	return out
}

// BulletList возвращает живые снаряды
func (e *ECS) BulletList() []ecs.Entity {
	var out []ecs.Entity
	query := e.bulletFilter.Query()
	for query.Next() {
		out = e.appendAlive(out, query.Entity())
	}
	return out
}

// BaseList возвращает живые базы (в сессии — не больше одной)
func (e *ECS) BaseList() []ecs.Entity {
	var out []ecs.Entity
	query := e.baseFilter.Query()
	for query.Next() {
		out = e.appendAlive(out, query.Entity())
	}
	return out
}

// ObstacleList возвращает препятствия
func (e *ECS) ObstacleList() []ecs.Entity {
	var out []ecs.Entity
	query := e.obstacleFilter.Query()
	for query.Next() {
		out = e.appendAlive(out, query.Entity())
	}
	return out
}

func (e *ECS) appendAlive(out []ecs.Entity, id ecs.Entity) []ecs.Entity {
	if _, marked := e.dead[id]; marked {
		return out
	}
	return append(out, id)
}
