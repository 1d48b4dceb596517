// internal/input/input.go
package input

import "gonum.org/v1/gonum/spatial/r2"

// Frame — ввод за один тик в виде простых данных.
// Ядро симуляции не знает об ebiten: кадр собирает cmd/game.
type Frame struct {
	Cursor        r2.Vec // курсор в координатах мира
	CursorInField bool   // курсор над игровым полем, а не над полосой сезонов

	LeftPressed   bool
	LeftReleased  bool
	RightPressed  bool
	RightReleased bool

	AnyKey    bool // нажата любая клавиша (в этом тике)
	Pause     bool // нажата клавиша паузы
	ForceWave bool // досрочный вызов волны
}

// Viewport — положение игрового поля на экране.
// Экран: начало в левом верхнем углу, Y вниз. Мир: начало в центре поля, Y вверх.
type Viewport struct {
	Width  float64 // ширина поля, px
	Height float64 // высота поля, px
	Top    float64 // отступ поля сверху (полоса сезонов), px
}

// NewViewport строит поле под экраном с полосой сезонов сверху
func NewViewport(screenWidth, screenHeight, barHeight int) Viewport {
	return Viewport{
		Width:  float64(screenWidth),
		Height: float64(screenHeight - barHeight),
		Top:    float64(barHeight),
	}
}

// ScreenToWorld переводит пиксели экрана в координаты мира
func (v Viewport) ScreenToWorld(sx, sy float64) r2.Vec {
	return r2.Vec{
		X: sx - v.Width/2,
		Y: v.Top + v.Height/2 - sy,
	}
}

// WorldToScreen — обратное преобразование
func (v Viewport) WorldToScreen(p r2.Vec) (sx, sy float64) {
	return p.X + v.Width/2, v.Top + v.Height/2 - p.Y
}

// Contains — попадает ли точка экрана в игровое поле
func (v Viewport) Contains(sx, sy float64) bool {
	return sx >= 0 && sx < v.Width && sy >= v.Top && sy < v.Top+v.Height
}

// FrameAt заполняет позицию курсора по его экранным координатам
func (v Viewport) FrameAt(sx, sy float64) Frame {
	return Frame{
		Cursor:        v.ScreenToWorld(sx, sy),
		CursorInField: v.Contains(sx, sy),
	}
}
