package system

import (
	"testing"

	"go-season-defense/internal/utils"
	"go-season-defense/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestMovementStepsTowardDestination(t *testing.T) {
	f := newFixture(t)
	moves := NewMovementSystem(f.ecs, newTestField(10, 10), noJitter{}, f.cfg)

	id := f.enemy(r2.Vec{X: 0, Y: 0}, 100)
	f.ecs.Enemy(id).Destination = r2.Vec{X: 100, Y: 0}

	moves.Update(0.5) // 60 * 0.5 = 30
	assert.InDelta(t, 30.0, f.ecs.Position(id).X, 1e-9)
	assert.InDelta(t, 0.0, f.ecs.Position(id).Y, 1e-9)
}

func TestMovementNeverOvershoots(t *testing.T) {
	f := newFixture(t)
	moves := NewMovementSystem(f.ecs, newTestField(10, 10), noJitter{}, f.cfg)

	id := f.enemy(r2.Vec{X: 0, Y: 0}, 100)
	f.ecs.Enemy(id).Destination = r2.Vec{X: 3, Y: 4}

	moves.Update(10) // шаг 600 при дистанции 5
	assert.Equal(t, r2.Vec{X: 3, Y: 4}, f.ecs.Position(id).Vec())
}

func TestMovementRetargetsOnArrival(t *testing.T) {
	f := newFixture(t)
	moves := NewMovementSystem(f.ecs, newTestField(10, 10), noJitter{}, f.cfg)

	// враг стоит в центре клетки (2, 0) и уже пришёл
	id := f.enemy(r2.Vec{X: 60, Y: 0}, 100)
	moves.Update(0.016)

	assert.Equal(t, r2.Vec{X: 30, Y: 0}, f.ecs.Enemy(id).Destination)
	assert.Equal(t, r2.Vec{X: 60, Y: 0}, f.ecs.Position(id).Vec(), "retarget tick does not move")
}

func TestMovementJitterWithinQuarterCell(t *testing.T) {
	f := newFixture(t)
	moves := NewMovementSystem(f.ecs, newTestField(10, 10), utils.NewPRNGService(3), f.cfg)

	id := f.enemy(r2.Vec{X: 60, Y: 0}, 100)
	quarter := f.cfg.Map.CellSize / 4
	for i := 0; i < 50; i++ {
		f.ecs.Position(id).Set(r2.Vec{X: 60, Y: 0})
		f.ecs.Enemy(id).Destination = r2.Vec{X: 60, Y: 0}
		moves.Update(0.016)

		dest := f.ecs.Enemy(id).Destination
		assert.InDelta(t, 30.0, dest.X, quarter)
		assert.InDelta(t, 0.0, dest.Y, quarter)
	}
}

func TestMovementFallbackCell(t *testing.T) {
	f := newFixture(t)
	f.cfg.Map.FallbackCell = gridmap.Cell{X: -1, Y: 1}
	// клетка (3, 3) отрезана стенами со всех сторон
	field := newTestField(10, 10,
		gridmap.Cell{X: 4, Y: 3}, gridmap.Cell{X: 2, Y: 3},
		gridmap.Cell{X: 3, Y: 4}, gridmap.Cell{X: 3, Y: 2},
	)
	moves := NewMovementSystem(f.ecs, field, noJitter{}, f.cfg)

	id := f.enemy(r2.Vec{X: 90, Y: 90}, 100)
	moves.Update(0.016)
	assert.Equal(t, r2.Vec{X: -30, Y: 30}, f.ecs.Enemy(id).Destination)
}

func TestEnemyReachesBaseCellAlongField(t *testing.T) {
	f := newFixture(t)
	field := newTestField(10, 10)
	moves := NewMovementSystem(f.ecs, field, noJitter{}, f.cfg)

	id := f.enemy(r2.Vec{X: 120, Y: -90}, 100)
	for i := 0; i < 1000; i++ {
		moves.Update(0.05)
	}
	pos := f.ecs.Position(id)
	assert.Equal(t, gridmap.Cell{}, gridmap.CellAt(pos.X, pos.Y, f.cfg.Map.CellSize))
}
