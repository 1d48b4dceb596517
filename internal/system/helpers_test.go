package system

import (
	"testing"

	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"
	"go-season-defense/internal/interfaces"
	"go-season-defense/internal/utils"
	"go-season-defense/pkg/gridmap"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

type testField struct {
	m     *gridmap.Map
	field *gridmap.FlowField
}

func (f *testField) GetMap() *gridmap.Map             { return f.m }
func (f *testField) GetFlowField() *gridmap.FlowField { return f.field }

func newTestField(width, height int, walls ...gridmap.Cell) *testField {
	m := gridmap.NewMap(width, height)
	for _, w := range walls {
		m.SetWall(w, true)
	}
	return &testField{m: m, field: gridmap.BuildFlowField(m, gridmap.Cell{})}
}

// noJitter — Random без смещения, Range отдаёт середину
type noJitter struct{}

func (noJitter) Range(min, max float64) float64 { return (min + max) / 2 }
func (noJitter) Jitter(float64) float64         { return 0 }

type fixture struct {
	cfg        *config.Config
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	damage     *DamageSystem
	events     []event.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		cfg:        config.Default(),
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
	}
	f.damage = NewDamageSystem(f.ecs, f.dispatcher)
	f.dispatcher.Subscribe(event.ListenerFunc(func(e event.Event) {
		f.events = append(f.events, e)
	}),
		event.WaveSpawned, event.EnemyKilled, event.EnemyReachedBase, event.TowerPlaced,
		event.TowerDestroyed, event.ObstaclePlaced, event.BaseDamaged, event.BaseDestroyed,
		event.SeasonChanged, event.SeasonsCompleted,
	)
	return f
}

func (f *fixture) count(t event.EventType) int {
	n := 0
	for _, e := range f.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (f *fixture) enemy(at r2.Vec, health float64) ecs.Entity {
	return f.ecs.SpawnEnemy(at, component.NewHealth(health), component.Enemy{
		Destination:   at,
		Speed:         f.cfg.Enemy.Speed,
		ContactDamage: f.cfg.Enemy.ContactDamage,
	})
}

func (f *fixture) tower(at r2.Vec) ecs.Entity {
	return f.ecs.SpawnTower(at, component.NewHealth(f.cfg.Tower.Health), component.Tower{
		Range:        f.cfg.Tower.Range,
		Damage:       f.cfg.Tower.Damage,
		BulletSpeed:  f.cfg.Bullet.Speed,
		FireInterval: f.cfg.Tower.FireInterval,
		Cooldown:     f.cfg.Tower.FireInterval,
	})
}

func (f *fixture) base(health float64) ecs.Entity {
	return f.ecs.SpawnBase(r2.Vec{}, component.NewHealth(health), component.Base{Radius: f.cfg.Base.Radius})
}

var _ interfaces.Random = (*utils.PRNGService)(nil)
