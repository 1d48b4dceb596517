// pkg/gridmap/generate.go
package gridmap

// Rand — минимальный источник случайности для генератора стен.
type Rand interface {
	Intn(n int) int
}

// GenerateOptions — параметры случайной расстановки стен
type GenerateOptions struct {
	Strokes     int // количество "мазков" стен
	MaxStroke   int // длина мазка выбирается из [0, MaxStroke)
	ClearRadius int // квадрат [-ClearRadius, ClearRadius) вокруг центра очищается
}

// DefaultGenerateOptions — 99 мазков до 3 клеток, центр 4×4 свободен
var DefaultGenerateOptions = GenerateOptions{
	Strokes:     99,
	MaxStroke:   4,
	ClearRadius: 2,
}

// Generate расставляет стены короткими горизонтальными и вертикальными отрезками,
// затем расчищает область вокруг базы.
func Generate(m *Map, rng Rand, opts GenerateOptions) {
	hw, hh := m.halfWidth(), m.halfHeight()
	if hw == 0 || hh == 0 || opts.MaxStroke <= 0 {
		return
	}

	for i := 0; i < opts.Strokes; i++ {
		x := rng.Intn(2*hw) - hw
		y := rng.Intn(2*hh) - hh
		dx := rng.Intn(opts.MaxStroke)
		dy := rng.Intn(opts.MaxStroke)

		for cx := x; cx < x+dx; cx++ {
			m.SetWall(Cell{X: cx, Y: y}, true)
		}
		for cy := y; cy < y+dy; cy++ {
			m.SetWall(Cell{X: x, Y: cy}, true)
		}
	}

	for x := -opts.ClearRadius; x < opts.ClearRadius; x++ {
		for y := -opts.ClearRadius; y < opts.ClearRadius; y++ {
			m.SetWall(Cell{X: x, Y: y}, false)
		}
	}
}
