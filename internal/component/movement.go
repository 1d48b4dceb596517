// internal/component/movement.go
package component

import "gonum.org/v1/gonum/spatial/r2"

// Position — компонент позиции в координатах мира (центр карты в начале координат, Y вверх)
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Set переносит сущность в точку v
func (p *Position) Set(v r2.Vec) {
	p.X, p.Y = v.X, v.Y
}

// PositionOf создаёт компонент позиции из вектора
func PositionOf(v r2.Vec) Position {
	return Position{X: v.X, Y: v.Y}
}
