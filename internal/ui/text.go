// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — шрифт интерфейса. Встроенный bitmap-шрифт: файлы не нужны.
var Face font.Face = basicfont.Face7x13

// MeasureText возвращает ширину и высоту строки в пикселях
func MeasureText(s string) (int, int) {
	b := text.BoundString(Face, s)
	return b.Dx(), b.Dy()
}

// DrawCenteredText рисует строку с центром в (cx, cy)
func DrawCenteredText(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	w, h := MeasureText(s)
	text.Draw(screen, s, Face, cx-w/2, cy+h/2, clr)
}

// DrawOutlinedText рисует строку с обводкой толщиной thickness
func DrawOutlinedText(screen *ebiten.Image, s string, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, Face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, Face, x, y, clr)
}
