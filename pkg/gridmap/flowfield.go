// pkg/gridmap/flowfield.go
package gridmap

// FlowField — таблица "откуда пришли", построенная поиском в ширину от базы.
// Для каждой достижимой клетки хранит соседа на шаг ближе к базе.
// Клетки без пути до базы в таблице отсутствуют.
type FlowField struct {
	base     Cell
	cameFrom map[Cell]Cell
}

// BuildFlowField выполняет BFS от клетки базы по свободным клеткам.
// База ссылается сама на себя. Первым найденный предшественник побеждает,
// поэтому результат зависит от порядка NeighborDirections.
func BuildFlowField(m *Map, base Cell) *FlowField {
	ff := &FlowField{
		base:     base,
		cameFrom: make(map[Cell]Cell),
	}
	ff.cameFrom[base] = base

	frontier := []Cell{base}
	for head := 0; head < len(frontier); head++ {
		current := frontier[head]
		for _, next := range m.Neighbors(current) {
			if _, seen := ff.cameFrom[next]; seen {
				continue
			}
			ff.cameFrom[next] = current
			frontier = append(frontier, next)
		}
	}
	return ff
}

// Base возвращает клетку базы, от которой строилось поле
func (f *FlowField) Base() Cell {
	return f.base
}

// Next возвращает следующую клетку на пути к базе.
// ok == false означает, что из клетки нет пути до базы.
func (f *FlowField) Next(c Cell) (Cell, bool) {
	next, ok := f.cameFrom[c]
	return next, ok
}

// Contains — есть ли у клетки запись в поле
func (f *FlowField) Contains(c Cell) bool {
	_, ok := f.cameFrom[c]
	return ok
}

// Len — количество достижимых клеток, включая базу
func (f *FlowField) Len() int {
	return len(f.cameFrom)
}

// Route возвращает последовательность клеток от c до базы включительно.
// Для недостижимой клетки возвращает nil.
func (f *FlowField) Route(c Cell) []Cell {
	if !f.Contains(c) {
		return nil
	}
	route := []Cell{c}
	for c != f.base && len(route) <= len(f.cameFrom) {
		c = f.cameFrom[c]
		route = append(route, c)
	}
	return route
}

// Distance — число шагов от клетки до базы
func (f *FlowField) Distance(c Cell) (int, bool) {
	route := f.Route(c)
	if route == nil {
		return 0, false
	}
	return len(route) - 1, true
}
