// pkg/isogrid/cell.go
package isogrid

import "go-siege-defense/pkg/utils"

// Cell - клетка сетки в координатах (Col, Row)
type Cell struct {
	Col, Row int
}

// Directions4 lists the four orthogonal steps in the order the pathfinder
// expands them: +col, -col, +row, -row.
var Directions4 = []Cell{
	{Col: 1, Row: 0}, {Col: -1, Row: 0},
	{Col: 0, Row: 1}, {Col: 0, Row: -1},
}

// Add возвращает сумму двух клеток
func (c Cell) Add(other Cell) Cell {
	return Cell{Col: c.Col + other.Col, Row: c.Row + other.Row}
}

// Subtract возвращает разность двух клеток
func (c Cell) Subtract(other Cell) Cell {
	return Cell{Col: c.Col - other.Col, Row: c.Row - other.Row}
}

// Manhattan returns the 4-neighbour distance between two cells.
func (c Cell) Manhattan(to Cell) int {
	return utils.Abs(c.Col-to.Col) + utils.Abs(c.Row-to.Row)
}

// InBounds reports whether the cell lies inside a size×size map.
func (c Cell) InBounds(size int) bool {
	return c.Col >= 0 && c.Col < size && c.Row >= 0 && c.Row < size
}

// Neighbors4 returns all orthogonal neighbours, including out-of-bounds ones.
func (c Cell) Neighbors4() []Cell {
	out := make([]Cell, 0, len(Directions4))
	for _, d := range Directions4 {
		out = append(out, c.Add(d))
	}
	return out
}
