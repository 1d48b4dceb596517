// pkg/gridmap/map.go
package gridmap

import "sort"

// Map — прямоугольная карта клеток с центром в начале координат.
// Стены хранятся разреженно: отсутствие записи означает свободную клетку.
type Map struct {
	Width  int
	Height int
	walls  map[Cell]bool
}

// NewMap создаёт пустую карту размером width×height клеток
func NewMap(width, height int) *Map {
	return &Map{
		Width:  width,
		Height: height,
		walls:  make(map[Cell]bool),
	}
}

// NewMapForScreen подбирает размер карты под экран: сколько целых клеток помещается.
func NewMapForScreen(screenWidth, screenHeight, cellSize float64) *Map {
	return NewMap(int(screenWidth/cellSize), int(screenHeight/cellSize))
}

func (m *Map) halfWidth() int  { return m.Width / 2 }
func (m *Map) halfHeight() int { return m.Height / 2 }

// HasWall сообщает, стоит ли стена в клетке. Незаданные клетки свободны.
func (m *Map) HasWall(c Cell) bool {
	return m.walls[c]
}

// SetWall ставит или убирает стену
func (m *Map) SetWall(c Cell, wall bool) {
	m.walls[c] = wall
}

// InMap проверяет, что клетка лежит в пределах ±половины ширины и высоты включительно.
func (m *Map) InMap(c Cell) bool {
	hw, hh := m.halfWidth(), m.halfHeight()
	return -hw <= c.X && c.X <= hw && -hh <= c.Y && c.Y <= hh
}

// IsOpen — клетка на карте и без стены
func (m *Map) IsOpen(c Cell) bool {
	return m.InMap(c) && !m.HasWall(c)
}

// Neighbors возвращает свободных ортогональных соседей в порядке +X, -X, +Y, -Y.
func (m *Map) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, len(NeighborDirections))
	for _, dir := range NeighborDirections {
		n := c.Add(dir)
		if m.IsOpen(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Cells перечисляет все клетки карты построчно, снизу вверх
func (m *Map) Cells() []Cell {
	hw, hh := m.halfWidth(), m.halfHeight()
	cells := make([]Cell, 0, (2*hw+1)*(2*hh+1))
	for y := -hh; y <= hh; y++ {
		for x := -hw; x <= hw; x++ {
			cells = append(cells, Cell{X: x, Y: y})
		}
	}
	return cells
}

// Walls возвращает клетки карты со стеной в детерминированном порядке.
// Стены за пределами карты (генератор может дотянуть мазок за край) не попадают в список.
func (m *Map) Walls() []Cell {
	walls := make([]Cell, 0, len(m.walls))
	for c, wall := range m.walls {
		if wall && m.InMap(c) {
			walls = append(walls, c)
		}
	}
	sort.Slice(walls, func(i, j int) bool {
		if walls[i].Y != walls[j].Y {
			return walls[i].Y < walls[j].Y
		}
		return walls[i].X < walls[j].X
	})
	return walls
}

// Bounds возвращает прямоугольник карты в координатах мира (края крайних клеток).
func (m *Map) Bounds(cellSize float64) (minX, minY, maxX, maxY float64) {
	half := cellSize / 2
	hw, hh := float64(m.halfWidth()), float64(m.halfHeight())
	return -hw*cellSize - half, -hh*cellSize - half, hw*cellSize + half, hh*cellSize + half
}
