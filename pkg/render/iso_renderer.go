// pkg/render/iso_renderer.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-siege-defense/pkg/isogrid"
)

// IsoRenderer рисует ромбическую сетку. Статичный задник рендерится один раз.
type IsoRenderer struct {
	projection isogrid.Projection
	mapSize    int
	colors     *MapColors
	fontFace   font.Face
	fillImg    *ebiten.Image
	fillVs     []ebiten.Vertex
	fillIs     []uint16
	strokeVs   []ebiten.Vertex
	strokeIs   []uint16
	mapImage   *ebiten.Image // предрендеренная карта

	ShowLabels bool
}

func NewIsoRenderer(projection isogrid.Projection, mapSize, screenWidth, screenHeight int, face font.Face, colors *MapColors) *IsoRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &IsoRenderer{
		projection: projection,
		mapSize:    mapSize,
		colors:     colors,
		fontFace:   face,
		fillImg:    fillImg,
		fillVs:     make([]ebiten.Vertex, 0, 8),
		fillIs:     make([]uint16, 0, 8),
		strokeVs:   make([]ebiten.Vertex, 0, 32),
		strokeIs:   make([]uint16, 0, 32),
		mapImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderMapImage перерисовывает задник; marked подкрашивает отдельные клетки
// (спавн, ядро).
func (r *IsoRenderer) RenderMapImage(marked map[isogrid.Cell]color.RGBA) {
	r.mapImage.Fill(r.colors.BackgroundColor)

	for row := 0; row < r.mapSize; row++ {
		for col := 0; col < r.mapSize; col++ {
			cell := isogrid.Cell{Col: col, Row: row}
			fill := r.colors.TileColor
			if (col+row)%2 == 1 {
				fill = r.colors.TileAltColor
			}
			if c, ok := marked[cell]; ok {
				fill = c
			}
			r.FillTile(r.mapImage, cell, fill)
			r.StrokeTile(r.mapImage, cell, r.colors.GridLineColor, r.colors.StrokeWidth)
			if r.ShowLabels && r.fontFace != nil {
				r.drawLabel(r.mapImage, cell)
			}
		}
	}
}

// Draw рисует предрендеренную карту одним вызовом.
func (r *IsoRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

// FillTile закрашивает ромб клетки.
func (r *IsoRenderer) FillTile(target *ebiten.Image, cell isogrid.Cell, fill color.RGBA) {
	x, y := r.projection.GridToWorld(cell)
	r.FillDiamond(target, x, y, r.projection.HalfTileWidth, r.projection.HalfTileHeight, fill)
}

// StrokeTile обводит ромб клетки.
func (r *IsoRenderer) StrokeTile(target *ebiten.Image, cell isogrid.Cell, stroke color.RGBA, width float32) {
	x, y := r.projection.GridToWorld(cell)
	path := diamond(x, y, r.projection.HalfTileWidth, r.projection.HalfTileHeight)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	paint(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillDiamond рисует произвольный ромб с центром (x, y); используется и для крыш строений.
func (r *IsoRenderer) FillDiamond(target *ebiten.Image, x, y, halfW, halfH float64, fill color.RGBA) {
	path := diamond(x, y, halfW, halfH)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillQuad закрашивает четырёхугольник (боковые грани блоков).
func (r *IsoRenderer) FillQuad(target *ebiten.Image, pts [4][2]float64, fill color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		path.LineTo(float32(p[0]), float32(p[1]))
	}
	path.Close()
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *IsoRenderer) drawLabel(target *ebiten.Image, cell isogrid.Cell) {
	x, y := r.projection.GridToWorld(cell)
	label := fmt.Sprintf("%d,%d", cell.Col, cell.Row)
	bounds := text.BoundString(r.fontFace, label)
	text.Draw(target, label, r.fontFace, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, r.colors.LabelColor)
}

func diamond(x, y, halfW, halfH float64) vector.Path {
	path := vector.Path{}
	path.MoveTo(float32(x), float32(y-halfH))
	path.LineTo(float32(x+halfW), float32(y))
	path.LineTo(float32(x), float32(y+halfH))
	path.LineTo(float32(x-halfW), float32(y))
	path.Close()
	return path
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
