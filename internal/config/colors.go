// internal/config/colors.go
package config

import (
	"image/color"

	"go-season-defense/internal/component"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridLineColor   = color.RGBA{40, 44, 60, 255}
	WallColor       = color.RGBA{255, 215, 0, 255} // золотой
	BaseColor       = color.RGBA{0, 100, 0, 255}
	EnemyColor      = color.RGBA{0, 0, 0, 255}
	EnemyStroke     = color.RGBA{200, 200, 200, 255}
	TowerColor      = color.RGBA{50, 100, 255, 255}
	TowerStroke     = color.RGBA{255, 255, 255, 255}
	BulletColor     = color.RGBA{255, 0, 0, 255}
	ObstacleColor   = color.RGBA{139, 90, 43, 255}
	TextLightColor  = color.RGBA{230, 230, 230, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
	TimeMarkerColor = color.RGBA{0, 0, 0, 255}
)

// SeasonColors — цвета сегментов полосы сезонов
var SeasonColors = map[component.SeasonKind]color.RGBA{
	component.SeasonBuild:      {0, 255, 0, 255},
	component.SeasonHeal:       {255, 0, 0, 255},
	component.SeasonUpgrade:    {255, 215, 0, 255},
	component.SeasonNeutralize: {238, 130, 238, 255},
}

// SeasonColor возвращает цвет сезона, для неизвестных — серый
func SeasonColor(kind component.SeasonKind) color.RGBA {
	if c, ok := SeasonColors[kind]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}
