// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// MenuButton — прямоугольная надпись-кнопка на экране меню
type MenuButton struct {
	Rect    image.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
}

// NewMenuButton создаёт кнопку с центром в (cx, cy)
func NewMenuButton(cx, cy, width, height int, label string) *MenuButton {
	return &MenuButton{
		Rect:    image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:    label,
		bgColor: color.RGBA{128, 128, 128, 255},
		fgColor: color.RGBA{0, 0, 0, 255},
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, b.bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{211, 211, 211, 255}, false)

	c := b.Rect.Min.Add(b.Rect.Size().Div(2))
	DrawCenteredText(screen, b.Text, c.X, c.Y, b.fgColor)
}
