// internal/ui/season_bar.go
package ui

import (
	"go-season-defense/internal/config"
	"go-season-defense/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SeasonBar — полоса сезонов над полем: сегменты по длительности и метка времени.
type SeasonBar struct {
	Width, Height float32
}

func NewSeasonBar(width, height float32) *SeasonBar {
	return &SeasonBar{Width: width, Height: height}
}

// Draw рисует сегменты расписания и метку текущего времени
func (b *SeasonBar) Draw(screen *ebiten.Image, view session.View) {
	var total float64
	for _, s := range view.Seasons {
		total += s.Duration
	}
	if total <= 0 || b.Height <= 0 {
		return
	}

	x := float32(0)
	for _, s := range view.Seasons {
		w := b.Width * float32(s.Duration/total)
		vector.DrawFilledRect(screen, x, 0, w, b.Height, config.SeasonColor(s.Kind), false)
		x += w
	}

	marker := b.Width * float32(view.TotalFraction)
	vector.StrokeLine(screen, marker, 0, marker, b.Height, 3, config.TimeMarkerColor, false)

	label := view.Season.String()
	_, h := MeasureText(label)
	DrawOutlinedText(screen, label, 8, int(b.Height)/2+h/2, 1, config.TextLightColor, config.TimeMarkerColor)
}
