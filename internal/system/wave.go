// internal/system/wave.go
package system

import (
	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"
	"go-season-defense/internal/interfaces"
	"go-season-defense/internal/logger"
	"go-season-defense/pkg/gridmap"

	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// WaveSystem выпускает врагов пачками: раз в interval секунд или по запросу.
type WaveSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	rng             interfaces.Random
	eventDispatcher *event.Dispatcher
	enemyCfg        config.EnemyConfig
	cellSize        float64

	interval  float64
	batchSize int
	timer     float64 // время до следующей волны
	forced    bool
	waves     int
}

func NewWaveSystem(ecs *entity.ECS, game interfaces.GameContext, rng interfaces.Random, eventDispatcher *event.Dispatcher, cfg *config.Config) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		game:            game,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		enemyCfg:        cfg.Enemy,
		cellSize:        cfg.Map.CellSize,
		interval:        cfg.Wave.Interval,
		batchSize:       cfg.Wave.BatchSize,
		timer:           cfg.Wave.Interval,
	}
}

// Force запрашивает волну в ближайшем тике, не сбивая периодический таймер.
func (s *WaveSystem) Force() {
	s.forced = true
}

// Waves — сколько волн выпущено
func (s *WaveSystem) Waves() int {
	return s.waves
}

// Update отсчитывает таймер и выпускает волну. Возвращает число созданных врагов.
func (s *WaveSystem) Update(deltaTime float64) int {
	spawned := 0
	s.timer -= deltaTime
	for s.timer <= 0 {
		s.timer += s.interval
		spawned += s.spawnWave(false)
	}
	if s.forced {
		s.forced = false
		spawned += s.spawnWave(true)
	}
	return spawned
}

func (s *WaveSystem) spawnWave(forced bool) int {
	accepted := 0
	for i := 0; i < s.batchSize; i++ {
		if _, ok := s.trySpawn(); ok {
			accepted++
		}
	}
	s.waves++

	logger.Log.WithFields(logrus.Fields{
		"wave":      s.waves,
		"requested": s.batchSize,
		"accepted":  accepted,
		"forced":    forced,
	}).Debug("wave spawned")
	s.eventDispatcher.Emit(event.WaveSpawned, event.WaveData{
		Requested: s.batchSize,
		Accepted:  accepted,
		Forced:    forced,
	})
	return accepted
}

// trySpawn — одна попытка: случайная точка внутри карты.
// Точку в стене или в клетке без пути к базе отбрасываем без повтора.
func (s *WaveSystem) trySpawn() (ecs.Entity, bool) {
	m := s.game.GetMap()
	minX, minY, maxX, maxY := m.Bounds(s.cellSize)
	at := r2.Vec{X: s.rng.Range(minX, maxX), Y: s.rng.Range(minY, maxY)}
	return s.SpawnAt(at)
}

// SpawnAt создаёт врага в точке, если её клетка достижима.
// Первая цель — центр следующей клетки маршрута, без смещения.
func (s *WaveSystem) SpawnAt(at r2.Vec) (ecs.Entity, bool) {
	field := s.game.GetFlowField()
	cell := gridmap.CellAt(at.X, at.Y, s.cellSize)
	if s.game.GetMap().HasWall(cell) {
		return ecs.Entity{}, false
	}
	next, ok := field.Next(cell)
	if !ok {
		return ecs.Entity{}, false
	}

	dx, dy := next.Center(s.cellSize)
	id := s.ecs.SpawnEnemy(at, component.NewHealth(s.enemyCfg.Health), component.Enemy{
		Destination:   r2.Vec{X: dx, Y: dy},
		Speed:         s.enemyCfg.Speed,
		ContactDamage: s.enemyCfg.ContactDamage,
	})
	return id, true
}
