// pkg/render/color.go
package render

import "image/color"

// MapColors — цвета статичного слоя карты
type MapColors struct {
	BackgroundColor color.RGBA
	GridLineColor   color.RGBA
	WallColor       color.RGBA
	StrokeWidth     float32
}

// EntityColors — цвета динамических сущностей
type EntityColors struct {
	Base     color.RGBA
	Enemy    color.RGBA
	Tower    color.RGBA
	Bullet   color.RGBA
	Obstacle color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor осветляет цвет на delta по каждому каналу
func LightenColor(c color.RGBA, delta int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+delta)),
		G: uint8(min(255, int(c.G)+delta)),
		B: uint8(min(255, int(c.B)+delta)),
		A: c.A,
	}
}
