// internal/session/session.go
package session

import (
	"errors"
	"fmt"

	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/internal/entity"
	"go-season-defense/internal/event"
	"go-season-defense/internal/input"
	"go-season-defense/internal/logger"
	"go-season-defense/internal/system"
	"go-season-defense/internal/utils"
	"go-season-defense/pkg/gridmap"

	"github.com/mlange-42/ark/ecs"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrNotInitialized — у сессии нет карты, поля потока или базы
var ErrNotInitialized = errors.New("session not initialized")

// Outcome — итог сессии
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Session владеет всеми ресурсами одной игры: картой, полем потока,
// сущностями, расписанием сезонов и таймером волн.
// Новая сессия создаётся при каждом входе в игру из меню.
type Session struct {
	cfg *config.Config

	Map             *gridmap.Map
	FlowField       *gridmap.FlowField
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	BaseID          ecs.Entity

	DamageSystem     *system.DamageSystem
	AreaSystem       *system.AreaSystem
	PlayerSystem     *system.PlayerSystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	BaseSystem       *system.BaseSystem
	SeasonSystem     *system.SeasonSystem

	walls         []gridmap.Cell
	gameTime      float64
	outcome       Outcome
	baseDestroyed bool
}

// New строит сессию: генерирует стены, строит поле потока от клетки базы
// и ставит базу в начало координат. seed == 0 берёт сид из конфигурации,
// а если и там 0 — от часов.
func New(cfg *config.Config, seed int64) *Session {
	if seed == 0 {
		seed = cfg.Timing.Seed
	}
	rng := utils.NewPRNGService(seed)

	m := gridmap.NewMapForScreen(float64(cfg.Screen.Width), cfg.PlayfieldHeight(), cfg.Map.CellSize)
	gridmap.Generate(m, rng, cfg.GenerateOptions())

	return NewWithMap(cfg, m, rng)
}

// NewWithMap строит сессию на готовой карте
func NewWithMap(cfg *config.Config, m *gridmap.Map, rng *utils.PRNGService) *Session {
	ecsWorld := entity.NewECS()
	eventDispatcher := event.NewDispatcher()

	s := &Session{
		cfg:             cfg,
		Map:             m,
		FlowField:       gridmap.BuildFlowField(m, gridmap.Cell{}),
		ECS:             ecsWorld,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		walls:           m.Walls(),
	}

	s.DamageSystem = system.NewDamageSystem(ecsWorld, eventDispatcher)
	s.AreaSystem = system.NewAreaSystem(ecsWorld, s.DamageSystem, cfg.Area)
	s.PlayerSystem = system.NewPlayerSystem(ecsWorld, s, s.AreaSystem, eventDispatcher, cfg)
	s.WaveSystem = system.NewWaveSystem(ecsWorld, s, rng, eventDispatcher, cfg)
	s.MovementSystem = system.NewMovementSystem(ecsWorld, s, rng, cfg)
	s.CombatSystem = system.NewCombatSystem(ecsWorld)
	s.ProjectileSystem = system.NewProjectileSystem(ecsWorld, s.DamageSystem, cfg.Bullet.ContactDistance)
	s.BaseSystem = system.NewBaseSystem(ecsWorld, s.DamageSystem, eventDispatcher)
	s.SeasonSystem = system.NewSeasonSystem(cfg.Seasons, eventDispatcher)

	listener := &SessionEventListener{session: s}
	eventDispatcher.Subscribe(listener,
		event.BaseDestroyed, event.TowerDestroyed, event.TowerPlaced, event.ObstaclePlaced)

	baseX, baseY := s.FlowField.Base().Center(cfg.Map.CellSize)
	s.BaseID = ecsWorld.SpawnBase(r2.Vec{X: baseX, Y: baseY},
		component.NewHealth(cfg.Base.Health), component.Base{Radius: cfg.Base.Radius})

	logger.Log.WithFields(logrus.Fields{
		"seed":      rng.Seed(),
		"width":     m.Width,
		"height":    m.Height,
		"walls":     len(s.walls),
		"reachable": s.FlowField.Len(),
	}).Info("session started")
	return s
}

// GetMap и GetFlowField реализуют interfaces.GameContext
func (s *Session) GetMap() *gridmap.Map {
	return s.Map
}

func (s *Session) GetFlowField() *gridmap.FlowField {
	return s.FlowField
}

// Tick продвигает симуляцию на deltaTime секунд.
// Порядок фиксирован: действия игрока по сезону, волны, движение,
// бой (башни, снаряды, касание базы), сезоны, итог, удаление.
// После окончания игры Tick ничего не делает.
func (s *Session) Tick(frame input.Frame, deltaTime float64) error {
	if s.outcome != Running {
		return nil
	}
	if err := s.check(); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	s.gameTime += deltaTime

	if frame.ForceWave {
		s.WaveSystem.Force()
	}
	s.PlayerSystem.Update(frame, s.SeasonSystem.Current())

	s.WaveSystem.Update(deltaTime)
	s.MovementSystem.Update(deltaTime)

	s.CombatSystem.Update(deltaTime)
	s.ProjectileSystem.Update(deltaTime)
	s.BaseSystem.Update()

	won := s.SeasonSystem.Update(deltaTime)

	// поражение в том же тике важнее победы
	switch {
	case s.baseDestroyed:
		s.finish(Lost)
	case won:
		s.finish(Won)
	}

	s.ECS.Cleanup()
	return nil
}

// ForceWave выпускает волну в следующем тике
func (s *Session) ForceWave() {
	if s.WaveSystem != nil {
		s.WaveSystem.Force()
	}
}

// Outcome — текущий итог
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// BaseHealth — здоровье базы; 0, если база уничтожена
func (s *Session) BaseHealth() float64 {
	if s.ECS == nil {
		return 0
	}
	if h := s.ECS.Health(s.BaseID); h != nil {
		return h.Value
	}
	return 0
}

// Score — очки: уничтоженные враги плюс оставшееся здоровье базы
func (s *Session) Score() int {
	kills := 0
	if s.PlayerSystem != nil {
		kills = s.PlayerSystem.Kills()
	}
	return kills*s.cfg.Score.PerKill + int(s.BaseHealth())
}

// GameTime — секунд симуляции с начала сессии
func (s *Session) GameTime() float64 {
	return s.gameTime
}

func (s *Session) check() error {
	switch {
	case s.ECS == nil || s.cfg == nil:
		return fmt.Errorf("%w: no entity world", ErrNotInitialized)
	case s.Map == nil:
		return fmt.Errorf("%w: no map", ErrNotInitialized)
	case s.FlowField == nil:
		return fmt.Errorf("%w: no flow field", ErrNotInitialized)
	case !s.ECS.Alive(s.BaseID):
		return fmt.Errorf("%w: no base", ErrNotInitialized)
	}
	return nil
}

func (s *Session) finish(outcome Outcome) {
	s.outcome = outcome
	logger.Log.WithFields(logrus.Fields{
		"outcome":   outcome,
		"score":     s.Score(),
		"kills":     s.PlayerSystem.Kills(),
		"waves":     s.WaveSystem.Waves(),
		"game_time": s.gameTime,
	}).Info("session finished")
}
