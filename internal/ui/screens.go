// internal/ui/screens.go
package ui

import (
	"go-season-defense/internal/component"
	"go-season-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screens рисует полноэкранные состояния: заставку, меню, итог, паузу.
type Screens struct {
	width, height int
	start         *MenuButton
}

func NewScreens(width, height int) *Screens {
	return &Screens{
		width:  width,
		height: height,
		start:  NewMenuButton(width/2, height/2+40, 220, 40, "Press any key"),
	}
}

func (s *Screens) DrawSplash(screen *ebiten.Image, progress float64) {
	screen.Fill(config.BackgroundColor)
	DrawCenteredText(screen, "SEASON DEFENSE", s.width/2, s.height/2, config.TextLightColor)

	barW := float32(s.width) / 3
	x := (float32(s.width) - barW) / 2
	y := float32(s.height)/2 + 30
	vector.DrawFilledRect(screen, x, y, barW*float32(progress), 4, config.SeasonColor(component.SeasonBuild), false)
}

func (s *Screens) DrawMenu(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	DrawCenteredText(screen, "SEASON DEFENSE", s.width/2, s.height/2-40, config.TextLightColor)
	s.start.Draw(screen)
}

func (s *Screens) DrawResult(screen *ebiten.Image, message string) {
	screen.Fill(config.BackgroundColor)
	DrawCenteredText(screen, message, s.width/2, s.height/2, config.TextLightColor)
	DrawCenteredText(screen, "Press any key", s.width/2, s.height/2+30, config.TextLightColor)
}

// DrawPause затемняет уже нарисованную игру
func (s *Screens) DrawPause(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(s.width), float32(s.height), config.OverlayColor, false)
	DrawCenteredText(screen, "PAUSED", s.width/2, s.height/2, config.TextLightColor)
}
