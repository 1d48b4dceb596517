package entity

import (
	"testing"

	"go-season-defense/internal/component"

	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestSpawnAndLookup(t *testing.T) {
	e := NewECS()

	enemy := e.SpawnEnemy(r2.Vec{X: 10, Y: 20}, component.NewHealth(100), component.Enemy{Speed: 60})
	tower := e.SpawnTower(r2.Vec{X: -5}, component.NewHealth(50), component.Tower{Range: 128})
	base := e.SpawnBase(r2.Vec{}, component.NewHealth(100), component.Base{Radius: 30})
	bullet := e.SpawnBullet(r2.Vec{X: -5}, component.Bullet{Target: enemy, Damage: 10})

	require.NotNil(t, e.Position(enemy))
	assert.Equal(t, r2.Vec{X: 10, Y: 20}, e.Position(enemy).Vec())
	require.NotNil(t, e.Enemy(enemy))
	assert.Equal(t, 60.0, e.Enemy(enemy).Speed)
	assert.Nil(t, e.Tower(enemy))
	assert.Nil(t, e.Bullet(enemy))

	require.NotNil(t, e.Tower(tower))
	assert.Equal(t, 50.0, e.Health(tower).Max)

	assert.True(t, e.IsBase(base))
	assert.False(t, e.IsBase(enemy))

	require.NotNil(t, e.Bullet(bullet))
	assert.Equal(t, enemy, e.Bullet(bullet).Target)
	assert.Nil(t, e.Health(bullet))

	assert.Equal(t, []ecs.Entity{enemy}, e.EnemyList())
	assert.Equal(t, []ecs.Entity{tower}, e.TowerList())
	assert.Equal(t, []ecs.Entity{bullet}, e.BulletList())
	assert.Equal(t, []ecs.Entity{base}, e.BaseList())
	assert.Empty(t, e.ObstacleList())
}

func TestZeroEntityIsNotAlive(t *testing.T) {
	e := NewECS()
	var zero ecs.Entity
	assert.False(t, e.Alive(zero))
	assert.False(t, e.MarkDead(zero))
	assert.Nil(t, e.Position(zero))
}

func TestMarkDeadIsDeferredAndOnce(t *testing.T) {
	e := NewECS()
	a := e.SpawnEnemy(r2.Vec{}, component.NewHealth(10), component.Enemy{})
	b := e.SpawnEnemy(r2.Vec{X: 1}, component.NewHealth(10), component.Enemy{})

	assert.True(t, e.MarkDead(a))
	assert.False(t, e.MarkDead(a), "second mark must be rejected")

	// помеченная сущность ещё в мире, но системы её уже не видят
	assert.True(t, e.Exists(a))
	assert.False(t, e.Alive(a))
	assert.Nil(t, e.Health(a))
	assert.Equal(t, []ecs.Entity{b}, e.EnemyList())
	assert.Equal(t, 1, e.PendingRemovals())

	assert.Equal(t, 1, e.Cleanup())
	assert.False(t, e.Exists(a))
	assert.True(t, e.Alive(b))
	assert.Equal(t, 0, e.PendingRemovals())
	assert.Equal(t, 0, e.Cleanup())
}

func TestStaleHandleAfterReuse(t *testing.T) {
	e := NewECS()
	old := e.SpawnEnemy(r2.Vec{}, component.NewHealth(10), component.Enemy{})
	e.MarkDead(old)
	e.Cleanup()

	fresh := e.SpawnEnemy(r2.Vec{X: 5}, component.NewHealth(10), component.Enemy{})
	assert.True(t, e.Alive(fresh))
	assert.False(t, e.Alive(old), "old handle must stay dead after its slot is reused")
	assert.Nil(t, e.Enemy(old))
}

func TestListsAreSnapshots(t *testing.T) {
	e := NewECS()
	for i := 0; i < 5; i++ {
		e.SpawnEnemy(r2.Vec{X: float64(i)}, component.NewHealth(10), component.Enemy{})
	}
	for _, id := range e.EnemyList() {
		e.MarkDead(id)
	}
	assert.Empty(t, e.EnemyList())
	assert.Equal(t, 5, e.Cleanup())
}

func TestObstacle(t *testing.T) {
	e := NewECS()
	o := e.SpawnObstacle(r2.Vec{X: 30}, component.Obstacle{})
	assert.Equal(t, []ecs.Entity{o}, e.ObstacleList())
	assert.Nil(t, e.Health(o))
	require.NotNil(t, e.Position(o))
}
