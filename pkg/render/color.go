// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	TileColor       color.RGBA
	TileAltColor    color.RGBA // шахматная раскраска
	GridLineColor   color.RGBA
	LabelColor      color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return ScaleColor(c, 0.5)
}

// ScaleColor multiplies the RGB channels by k, clamped to 255.
func ScaleColor(c color.RGBA, k float64) color.RGBA {
	scale := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// WithAlpha returns c with a replaced alpha channel.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
