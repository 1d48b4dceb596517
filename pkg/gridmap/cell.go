// pkg/gridmap/cell.go
package gridmap

import "math"

// Cell — клетка сетки в целочисленных координатах (X, Y).
// Ось Y направлена вверх, клетка (0, 0) находится в центре карты.
type Cell struct {
	X, Y int
}

// NeighborDirections — четыре ортогональных направления.
// Порядок важен: он определяет разрешение ничьих в BFS и воспроизводимость поля потока.
var NeighborDirections = []Cell{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{X: c.X + other.X, Y: c.Y + other.Y}
}

// Manhattan — манхэттенское расстояние между клетками
func (c Cell) Manhattan(to Cell) int {
	return abs(c.X-to.X) + abs(c.Y-to.Y)
}

// CellAt возвращает клетку, содержащую точку мира.
// Сдвиг на половину клетки совмещает центры клеток с кратными cellSize точками.
func CellAt(x, y, cellSize float64) Cell {
	half := cellSize / 2
	return Cell{
		X: int(math.Floor((x + half) / cellSize)),
		Y: int(math.Floor((y + half) / cellSize)),
	}
}

// Center возвращает центр клетки в координатах мира.
func (c Cell) Center(cellSize float64) (x, y float64) {
	return float64(c.X) * cellSize, float64(c.Y) * cellSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
