// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"go-siege-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LivesIndicator отображает жизни базы сеткой квадратов 5×4.
type LivesIndicator struct {
	X, Y       float32
	Columns    int
	Rows       int
	Size       float32
	Gap        float32
	AliveColor color.Color
	LostColor  color.Color
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{
		X:          x,
		Y:          y,
		Columns:    5,
		Rows:       4,
		Size:       8,
		Gap:        3,
		AliveColor: config.TextLivesColor,
		LostColor:  color.RGBA{71, 85, 105, 180},
	}
}

// Capacity - сколько жизней помещается в сетку.
func (l *LivesIndicator) Capacity() int { return l.Columns * l.Rows }

// Draw рисует квадраты построчно; лишние жизни сверх сетки не показываются.
func (l *LivesIndicator) Draw(screen *ebiten.Image, lives int) {
	for i := 0; i < l.Capacity(); i++ {
		col := i % l.Columns
		row := i / l.Columns
		x := l.X + float32(col)*(l.Size+l.Gap)
		y := l.Y + float32(row)*(l.Size+l.Gap)
		clr := l.LostColor
		if i < lives {
			clr = l.AliveColor
		}
		vector.DrawFilledRect(screen, x, y, l.Size, l.Size, clr, false)
	}
}
