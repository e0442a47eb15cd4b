// internal/ui/draw.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace - встроенный моноширинный шрифт, внешние файлы не нужны.
var DefaultFace font.Face = basicfont.Face7x13

var whiteSubImage *ebiten.Image

// whiteTexture создаётся при первой отрисовке, а не при импорте пакета.
func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillPath закрашивает замкнутый путь одним цветом.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whiteTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whiteTexture(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func applyColor(vs []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

func triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	path := &vector.Path{}
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	return path
}

// drawCenteredText рисует строку по центру прямоугольника.
func drawCenteredText(dst *ebiten.Image, s string, face font.Face, rect image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(dst, s, face, x, y, clr)
}

// drawOutlinedText рисует текст с обводкой заданной толщины.
func drawOutlinedText(dst *ebiten.Image, s string, face font.Face, x, y, thickness int, fg, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, fg)
}
