package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestTowerFiresOnlyWhenCooldownCompletes(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.ecs)
	f.tower(r2.Vec{})
	f.enemy(r2.Vec{X: 50}, 100)

	assert.Equal(t, 0, combat.Update(0.5))
	assert.Equal(t, 1, combat.Update(0.5))
	assert.Equal(t, 0, combat.Update(0.5))
	assert.Equal(t, 1, combat.Update(0.5))
	assert.Len(t, f.ecs.BulletList(), 2)
}

func TestTowerTargetsNearestEnemy(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.ecs)
	f.tower(r2.Vec{})
	f.enemy(r2.Vec{X: 100}, 100)
	near := f.enemy(r2.Vec{Y: -40}, 100)
	f.enemy(r2.Vec{X: -90, Y: 10}, 100)

	require.Equal(t, 1, combat.Update(1))
	bullet := f.ecs.Bullet(f.ecs.BulletList()[0])
	assert.Equal(t, near, bullet.Target)
	assert.Equal(t, f.cfg.Tower.Damage, bullet.Damage)
	assert.Equal(t, f.cfg.Bullet.Speed, bullet.Speed)
	assert.Equal(t, r2.Vec{}, f.ecs.Position(f.ecs.BulletList()[0]).Vec())
}

func TestTowerIgnoresOutOfRange(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.ecs)
	id := f.tower(r2.Vec{})
	f.enemy(r2.Vec{X: f.cfg.Tower.Range + 1}, 100)

	assert.Equal(t, 0, combat.Update(1))
	assert.Empty(t, f.ecs.BulletList())
	// перезарядка всё равно прошла
	assert.Equal(t, f.cfg.Tower.FireInterval, f.ecs.Tower(id).Cooldown)
}

func TestTowerRearmsAfterLongTick(t *testing.T) {
	f := newFixture(t)
	combat := NewCombatSystem(f.ecs)
	id := f.tower(r2.Vec{})

	combat.Update(5)
	assert.Equal(t, f.cfg.Tower.FireInterval, f.ecs.Tower(id).Cooldown)
}
