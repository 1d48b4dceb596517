// internal/ui/scene.go
package ui

import (
	"go-season-defense/internal/config"
	"go-season-defense/internal/input"
	"go-season-defense/internal/state"
	"go-season-defense/pkg/gridmap"
	"go-season-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneRenderer выбирает экран по текущему состоянию машины состояний.
type SceneRenderer struct {
	screens  *Screens
	bar      *SeasonBar
	hud      *HUD
	grid     *render.GridRenderer
	drawnMap *gridmap.Map // карта, уже отрисованная в слой
}

func NewSceneRenderer(cfg *config.Config, viewport input.Viewport) *SceneRenderer {
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GridLineColor:   config.GridLineColor,
		WallColor:       config.WallColor,
		StrokeWidth:     1,
	}
	entityColors := render.EntityColors{
		Base:     config.BaseColor,
		Enemy:    config.EnemyColor,
		Tower:    config.TowerColor,
		Bullet:   config.BulletColor,
		Obstacle: config.ObstacleColor,
	}
	radii := render.Radii{
		Base:   cfg.Base.Radius,
		Enemy:  cfg.Enemy.Radius,
		Tower:  cfg.Tower.Radius,
		Bullet: cfg.Bullet.Radius,
	}

	return &SceneRenderer{
		screens: NewScreens(cfg.Screen.Width, cfg.Screen.Height),
		bar:     NewSeasonBar(float32(cfg.Screen.Width), float32(cfg.Screen.SeasonBarHeight)),
		hud:     NewHUD(cfg.Screen.Width-110, cfg.Screen.SeasonBarHeight+20),
		grid:    render.NewGridRenderer(viewport, cfg.Map.CellSize, mapColors, entityColors, radii),
	}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, sm *state.StateMachine) {
	switch s := sm.Current().(type) {
	case *state.SplashState:
		r.screens.DrawSplash(screen, s.Progress())
	case *state.MenuState:
		r.screens.DrawMenu(screen)
	case *state.GameState:
		r.drawGame(screen, s)
	case *state.PauseState:
		r.drawGame(screen, s.Previous())
		r.screens.DrawPause(screen)
	case *state.ResultState:
		r.screens.DrawResult(screen, s.Message())
	}
}

func (r *SceneRenderer) drawGame(screen *ebiten.Image, g *state.GameState) {
	view := g.Simulation().View()
	// новая сессия — новая карта
	if view.Map != nil && view.Map != r.drawnMap {
		r.grid.RenderMapImage(view.Map)
		r.drawnMap = view.Map
	}

	screen.Fill(config.BackgroundColor)
	r.grid.Draw(screen, view)
	r.bar.Draw(screen, view)
	r.hud.Draw(screen, view)
}
