// internal/session/view.go
package session

import (
	"go-season-defense/internal/component"
	"go-season-defense/internal/config"
	"go-season-defense/pkg/gridmap"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// EntityView — сущность для отрисовки
type EntityView struct {
	ID       ecs.Entity
	Position r2.Vec
	Scale    float64 // max(health / initial, 0.25); 1 для сущностей без здоровья
}

// View — снимок состояния после тика. Отрисовка читает только его.
type View struct {
	Map      *gridmap.Map // только для чтения
	CellSize float64
	Walls    []gridmap.Cell

	Enemies   []EntityView
	Towers    []EntityView
	Bullets   []EntityView
	Obstacles []EntityView
	Base      EntityView
	HasBase   bool

	BaseHealth float64
	Season     component.SeasonKind
	Seasons    []config.SeasonInterval

	IntervalFraction float64
	TotalFraction    float64

	Outcome Outcome
	Score   int
	Kills   int
	Waves   int
}

// View собирает снимок для отрисовки
func (s *Session) View() View {
	v := View{
		Map:              s.Map,
		CellSize:         s.cfg.Map.CellSize,
		Walls:            s.walls,
		BaseHealth:       s.BaseHealth(),
		Season:           s.SeasonSystem.Current(),
		Seasons:          s.SeasonSystem.Intervals(),
		IntervalFraction: s.SeasonSystem.IntervalFraction(),
		TotalFraction:    s.SeasonSystem.TotalFraction(),
		Outcome:          s.outcome,
		Score:            s.Score(),
		Kills:            s.PlayerSystem.Kills(),
		Waves:            s.WaveSystem.Waves(),
	}

	v.Enemies = s.entityViews(s.ECS.EnemyList())
	v.Towers = s.entityViews(s.ECS.TowerList())
	v.Bullets = s.entityViews(s.ECS.BulletList())
	v.Obstacles = s.entityViews(s.ECS.ObstacleList())
	if bases := s.entityViews(s.ECS.BaseList()); len(bases) > 0 {
		v.Base, v.HasBase = bases[0], true
	}
	return v
}

func (s *Session) entityViews(ids []ecs.Entity) []EntityView {
	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		pos := s.ECS.Position(id)
		if pos == nil {
			continue
		}
		scale := 1.0
		if h := s.ECS.Health(id); h != nil {
			scale = h.Scale()
		}
		views = append(views, EntityView{ID: id, Position: pos.Vec(), Scale: scale})
	}
	return views
}
