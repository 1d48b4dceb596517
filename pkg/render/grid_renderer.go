// pkg/render/grid_renderer.go
package render

import (
	"image/color"

	"go-season-defense/internal/input"
	"go-season-defense/internal/session"
	"go-season-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// Radii — радиусы сущностей в пикселях при полном здоровье
type Radii struct {
	Base   float64
	Enemy  float64
	Tower  float64
	Bullet float64
}

// GridRenderer рисует игровое поле: карту заранее, сущности каждый кадр.
type GridRenderer struct {
	viewport input.Viewport
	cellSize float64
	colors   MapColors
	entities EntityColors
	radii    Radii
	mapImage *ebiten.Image // предрендеренная карта
}

func NewGridRenderer(viewport input.Viewport, cellSize float64, colors MapColors, entities EntityColors, radii Radii) *GridRenderer {
	return &GridRenderer{
		viewport: viewport,
		cellSize: cellSize,
		colors:   colors,
		entities: entities,
		radii:    radii,
		mapImage: ebiten.NewImage(int(viewport.Width), int(viewport.Top+viewport.Height)),
	}
}

// RenderMapImage отрисовывает сетку и стены. Карта статична, поэтому
// вызывается один раз на сессию.
func (r *GridRenderer) RenderMapImage(m *gridmap.Map) {
	r.mapImage.Clear()
	vector.DrawFilledRect(r.mapImage, 0, float32(r.viewport.Top),
		float32(r.viewport.Width), float32(r.viewport.Height), r.colors.BackgroundColor, false)

	for _, cell := range m.Cells() {
		x, y := r.cellOrigin(cell)
		vector.StrokeRect(r.mapImage, x, y, float32(r.cellSize), float32(r.cellSize),
			r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
	for _, cell := range m.Walls() {
		r.drawWall(r.mapImage, cell)
	}
}

// Draw рисует карту и снимок сессии
func (r *GridRenderer) Draw(screen *ebiten.Image, view session.View) {
	screen.DrawImage(r.mapImage, nil)

	for _, o := range view.Obstacles {
		x, y := r.toScreen(o.Position.X, o.Position.Y)
		half := float32(r.cellSize) / 2
		vector.DrawFilledRect(screen, x-half, y-half, 2*half, 2*half, r.entities.Obstacle, false)
	}
	if view.HasBase {
		r.drawCircle(screen, view.Base, r.radii.Base, r.entities.Base)
	}
	for _, t := range view.Towers {
		r.drawCircle(screen, t, r.radii.Tower, r.entities.Tower)
	}
	for _, e := range view.Enemies {
		r.drawCircle(screen, e, r.radii.Enemy, r.entities.Enemy)
	}
	for _, b := range view.Bullets {
		r.drawCircle(screen, b, r.radii.Bullet, r.entities.Bullet)
	}
}

func (r *GridRenderer) drawCircle(screen *ebiten.Image, e session.EntityView, radius float64, c color.RGBA) {
	x, y := r.toScreen(e.Position.X, e.Position.Y)
	rad := float32(radius * e.Scale)
	vector.DrawFilledCircle(screen, x, y, rad, c, true)
	vector.StrokeCircle(screen, x, y, rad, 1, LightenColor(c, 60), true)
}

func (r *GridRenderer) drawWall(target *ebiten.Image, cell gridmap.Cell) {
	x, y := r.cellOrigin(cell)
	size := float32(r.cellSize)
	vector.DrawFilledRect(target, x, y, size, size, r.colors.WallColor, false)
	vector.StrokeRect(target, x, y, size, size, r.colors.StrokeWidth, DarkenColor(r.colors.WallColor), false)
}

// cellOrigin — левый верхний угол клетки на экране
func (r *GridRenderer) cellOrigin(cell gridmap.Cell) (float32, float32) {
	cx, cy := cell.Center(r.cellSize)
	x, y := r.toScreen(cx, cy)
	half := float32(r.cellSize) / 2
	return x - half, y - half
}

func (r *GridRenderer) toScreen(x, y float64) (float32, float32) {
	sx, sy := r.viewport.WorldToScreen(r2.Vec{X: x, Y: y})
	return float32(sx), float32(sy)
}
