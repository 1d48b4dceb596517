package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testCellSize = 30.0

func newTestMap() *Map {
	return NewMapForScreen(800, 400, testCellSize)
}

func TestNewMapForScreen(t *testing.T) {
	m := newTestMap()
	assert.Equal(t, 26, m.Width)
	assert.Equal(t, 13, m.Height)
}

func TestNeighbors_Origin(t *testing.T) {
	m := newTestMap()
	assert.Len(t, m.Neighbors(Cell{X: 0, Y: 0}), 4)
}

func TestNeighbors_OutOfBounds(t *testing.T) {
	m := newTestMap()
	assert.Empty(t, m.Neighbors(Cell{X: 100, Y: 100}))
}

func TestNeighbors_Order(t *testing.T) {
	m := newTestMap()
	got := m.Neighbors(Cell{X: 2, Y: 3})
	assert.Equal(t, []Cell{{3, 3}, {1, 3}, {2, 4}, {2, 2}}, got)
}

func TestNeighbors_SkipsWallsAndEdges(t *testing.T) {
	m := newTestMap()
	m.SetWall(Cell{X: 1, Y: 0}, true)
	assert.Equal(t, []Cell{{-1, 0}, {0, 1}, {0, -1}}, m.Neighbors(Cell{X: 0, Y: 0}))

	// Угол карты: (13, 6) — правый верхний край
	corner := Cell{X: 13, Y: 6}
	assert.True(t, m.InMap(corner))
	assert.Equal(t, []Cell{{12, 6}, {13, 5}}, m.Neighbors(corner))
}

func TestInMap(t *testing.T) {
	m := newTestMap()
	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{13, 6}, true},
		{Cell{-13, -6}, true},
		{Cell{14, 0}, false},
		{Cell{0, -7}, false},
		{Cell{100, 100}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.InMap(tt.cell), "cell %v", tt.cell)
	}
}

func TestWallRoundTrip(t *testing.T) {
	m := newTestMap()
	c := Cell{X: 4, Y: -2}

	assert.False(t, m.HasWall(c), "never-set cell must be open")
	m.SetWall(c, true)
	assert.True(t, m.HasWall(c))
	m.SetWall(c, false)
	assert.False(t, m.HasWall(c))
	m.SetWall(c, true)
	assert.True(t, m.HasWall(c))

	assert.False(t, m.HasWall(Cell{X: 500, Y: 500}))
}

func TestWalls_SortedAndInMap(t *testing.T) {
	m := newTestMap()
	m.SetWall(Cell{X: 3, Y: 1}, true)
	m.SetWall(Cell{X: -3, Y: 1}, true)
	m.SetWall(Cell{X: 0, Y: -2}, true)
	m.SetWall(Cell{X: 1, Y: 1}, false)
	m.SetWall(Cell{X: 40, Y: 0}, true)

	assert.Equal(t, []Cell{{0, -2}, {-3, 1}, {3, 1}}, m.Walls())
}

func TestCells(t *testing.T) {
	m := NewMap(4, 2)
	cells := m.Cells()
	assert.Len(t, cells, 5*3)
	assert.Equal(t, Cell{-2, -1}, cells[0])
	assert.Equal(t, Cell{2, 1}, cells[len(cells)-1])
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		x, y float64
		want Cell
	}{
		{0, 0, Cell{0, 0}},
		{14.9, 0, Cell{0, 0}},
		{15, 0, Cell{1, 0}},
		{-15, 0, Cell{0, 0}},
		{-15.1, 0, Cell{-1, 0}},
		{60, -60, Cell{2, -2}},
		{44.9, 45, Cell{1, 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CellAt(tt.x, tt.y, testCellSize), "point (%v, %v)", tt.x, tt.y)
	}
}

func TestCenterRoundTrip(t *testing.T) {
	m := newTestMap()
	for _, c := range m.Cells() {
		x, y := c.Center(testCellSize)
		assert.Equal(t, c, CellAt(x, y, testCellSize))
	}
}

func TestBounds(t *testing.T) {
	m := newTestMap()
	minX, minY, maxX, maxY := m.Bounds(testCellSize)
	assert.Equal(t, -405.0, minX)
	assert.Equal(t, -195.0, minY)
	assert.Equal(t, 405.0, maxX)
	assert.Equal(t, 195.0, maxY)

	assert.Equal(t, Cell{-13, -6}, CellAt(minX, minY, testCellSize))
	assert.Equal(t, Cell{13, 6}, CellAt(maxX-0.001, maxY-0.001, testCellSize))
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 7, Cell{1, 2}.Manhattan(Cell{-2, -2}))
}
