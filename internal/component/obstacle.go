// internal/component/obstacle.go
package component

import "go-season-defense/pkg/gridmap"

// Obstacle — поставленное игроком препятствие.
// Стеной на карте не является: поле потока остаётся прежним.
type Obstacle struct {
	Cell gridmap.Cell
}
