package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestScreenToWorld(t *testing.T) {
	v := NewViewport(960, 600, 30)
	assert.Equal(t, Viewport{Width: 960, Height: 570, Top: 30}, v)

	// центр поля — начало координат мира
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, v.ScreenToWorld(480, 315))
	// левый верхний угол поля
	assert.Equal(t, r2.Vec{X: -480, Y: 285}, v.ScreenToWorld(0, 30))
	// Y экрана вниз, Y мира вверх
	assert.Equal(t, r2.Vec{X: 10, Y: -20}, v.ScreenToWorld(490, 335))
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	v := NewViewport(800, 400, 0)
	for _, p := range []r2.Vec{{}, {X: 123.5, Y: -77}, {X: -400, Y: 200}} {
		sx, sy := v.WorldToScreen(p)
		assert.Equal(t, p, v.ScreenToWorld(sx, sy))
	}
}

func TestContains(t *testing.T) {
	v := NewViewport(960, 600, 30)
	assert.True(t, v.Contains(0, 30))
	assert.True(t, v.Contains(959, 599))
	assert.False(t, v.Contains(100, 10), "season bar is not the field")
	assert.False(t, v.Contains(960, 100))
	assert.False(t, v.Contains(-1, 100))

	f := v.FrameAt(480, 10)
	assert.False(t, f.CursorInField)
	f = v.FrameAt(480, 315)
	assert.True(t, f.CursorInField)
	assert.Equal(t, r2.Vec{}, f.Cursor)
}
