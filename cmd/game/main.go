// cmd/game/main.go
package main

import (
	"os"
	"time"

	"go-season-defense/internal/config"
	"go-season-defense/internal/input"
	"go-season-defense/internal/logger"
	"go-season-defense/internal/session"
	"go-season-defense/internal/state"
	"go-season-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
)

type AppGame struct {
	cfg            *config.Config
	stateMachine   *state.StateMachine
	scene          *ui.SceneRenderer
	viewport       input.Viewport
	lastUpdateTime time.Time
	keys           []ebiten.Key
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.cfg.Timing.MaxDeltaTime {
		deltaTime = a.cfg.Timing.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(a.readFrame(), deltaTime)
	return nil
}

// readFrame переводит ввод ebiten в простой кадр для ядра
func (a *AppGame) readFrame() input.Frame {
	x, y := ebiten.CursorPosition()
	frame := a.viewport.FrameAt(float64(x), float64(y))

	frame.LeftPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	frame.LeftReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	frame.RightPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	frame.RightReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight)

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	frame.AnyKey = len(a.keys) > 0
	frame.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9)
	frame.ForceWave = inpututil.IsKeyJustPressed(ebiten.KeyW)
	return frame
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen, a.stateMachine)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

func main() {
	logger.Init()

	configPath := os.Getenv("TD_CONFIG")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Log.WithError(err).WithField("path", configPath).Fatal("loading config")
	}
	logger.Log.WithFields(logrus.Fields{
		"path":    configPath,
		"seasons": len(cfg.Seasons),
		"seed":    cfg.Timing.Seed,
	}).Info("config loaded")

	newSession := func() state.Simulation {
		return session.New(cfg, 0)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewSplashState(sm, cfg.Timing.SplashSeconds, newSession))

	viewport := input.NewViewport(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.SeasonBarHeight)
	app := &AppGame{
		cfg:            cfg,
		stateMachine:   sm,
		scene:          ui.NewSceneRenderer(cfg, viewport),
		viewport:       viewport,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Season Defense")
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("game loop")
	}
}
