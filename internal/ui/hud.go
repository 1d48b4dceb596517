// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"go-season-defense/internal/config"
	"go-season-defense/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD — строка состояния в углу поля: волна, база, очки
type HUD struct {
	X, Y int
}

func NewHUD(x, y int) *HUD {
	return &HUD{X: x, Y: y}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (h *HUD) Draw(screen *ebiten.Image, view session.View) {
	lines := []string{
		fmt.Sprintf("Base %d", int(view.BaseHealth)),
		fmt.Sprintf("Score %d", view.Score),
	}
	if wave := toRoman(view.Waves); wave != "" {
		lines = append(lines, "Wave "+wave)
	}
	for i, line := range lines {
		DrawOutlinedText(screen, line, h.X, h.Y+i*16, 1, config.TextLightColor, config.TimeMarkerColor)
	}
}
