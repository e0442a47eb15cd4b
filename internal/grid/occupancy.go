// internal/grid/occupancy.go
package grid

import (
	"errors"

	"go-siege-defense/internal/types"
	"go-siege-defense/pkg/isogrid"
)

var (
	ErrOccupied    = errors.New("cell is occupied")
	ErrOutOfBounds = errors.New("cell is out of bounds")
)

// Occupancy - авторитетная карта занятости: не больше одного строения на клетку.
type Occupancy struct {
	size  int
	cells []types.EntityID // 0 - свободно
}

func NewOccupancy(size int) *Occupancy {
	return &Occupancy{size: size, cells: make([]types.EntityID, size*size)}
}

func (o *Occupancy) Size() int { return o.size }

func (o *Occupancy) index(c isogrid.Cell) int {
	return c.Row*o.size + c.Col
}

// IsOccupied reports true for occupied cells and for every cell outside the map.
func (o *Occupancy) IsOccupied(c isogrid.Cell) bool {
	if !c.InBounds(o.size) {
		return true
	}
	return o.cells[o.index(c)] != 0
}

// IsWalkable is the pathfinder's view of the grid.
func (o *Occupancy) IsWalkable(c isogrid.Cell) bool {
	return !o.IsOccupied(c)
}

// At returns the structure on the cell, or false if it is empty or off-map.
func (o *Occupancy) At(c isogrid.Cell) (types.EntityID, bool) {
	if !c.InBounds(o.size) {
		return 0, false
	}
	id := o.cells[o.index(c)]
	return id, id != 0
}

// Place registers a structure on a free cell.
func (o *Occupancy) Place(c isogrid.Cell, id types.EntityID) error {
	if !c.InBounds(o.size) {
		return ErrOutOfBounds
	}
	if o.cells[o.index(c)] != 0 {
		return ErrOccupied
	}
	o.cells[o.index(c)] = id
	return nil
}

// Remove frees the cell. Removing an empty or off-map cell is a no-op.
func (o *Occupancy) Remove(c isogrid.Cell) {
	if c.InBounds(o.size) {
		o.cells[o.index(c)] = 0
	}
}

// Count returns the number of occupied cells.
func (o *Occupancy) Count() int {
	n := 0
	for _, id := range o.cells {
		if id != 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every occupied cell in row-major order.
func (o *Occupancy) Each(fn func(c isogrid.Cell, id types.EntityID)) {
	for i, id := range o.cells {
		if id != 0 {
			fn(isogrid.Cell{Col: i % o.size, Row: i / o.size}, id)
		}
	}
}
