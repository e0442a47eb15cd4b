// pkg/isogrid/projection.go
package isogrid

import "math"

// Projection maps grid cells onto the diamond (isometric) world plane.
//
//	world.x = (col-row)·halfTileWidth  + offsetX
//	world.y = (col+row)·halfTileHeight + offsetY
type Projection struct {
	HalfTileWidth  float64
	HalfTileHeight float64
	OffsetX        float64
	OffsetY        float64
}

// NewProjection builds a projection from full tile dimensions and the screen
// point that cell (0,0) is drawn at.
func NewProjection(tileWidth, tileHeight, offsetX, offsetY float64) Projection {
	return Projection{
		HalfTileWidth:  tileWidth / 2,
		HalfTileHeight: tileHeight / 2,
		OffsetX:        offsetX,
		OffsetY:        offsetY,
	}
}

// GridToWorld конвертирует клетку в мировые координаты (центр ромба)
func (p Projection) GridToWorld(c Cell) (x, y float64) {
	x = float64(c.Col-c.Row)*p.HalfTileWidth + p.OffsetX
	y = float64(c.Col+c.Row)*p.HalfTileHeight + p.OffsetY
	return
}

// WorldToGrid is the exact inverse of GridToWorld, rounded to the nearest cell.
func (p Projection) WorldToGrid(x, y float64) Cell {
	adjX := (x - p.OffsetX) / p.HalfTileWidth
	adjY := (y - p.OffsetY) / p.HalfTileHeight
	col := (adjX + adjY) / 2
	row := (adjY - adjX) / 2
	return Cell{Col: int(math.Round(col)), Row: int(math.Round(row))}
}

// Distance is the euclidean distance between two world points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
