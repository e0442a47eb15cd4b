// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator показывает фазу кружком; клик в фазе строительства
// досрочно запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор; progress - доля оставшегося времени фазы строительства.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color, progress float64) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)

	if progress > 0 && progress < 1 {
		// Дуга оставшегося времени
		path := vector.Path{}
		start := float32(-math.Pi / 2)
		path.Arc(i.X, i.Y, currentRadius+4, start, start+float32(2*math.Pi*progress), vector.Clockwise)
		strokePath(screen, &path, 2, color.White)
	}
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

// HandleClick обрабатывает клик
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
