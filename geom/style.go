package geom

import (
	"github.com/vdobler/pointplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Glyph maps a point shape to the gonum glyph drawing it.
func Glyph(s pointplot.PointShape) draw.GlyphDrawer {
	switch s {
	case pointplot.CirclePoint:
		return draw.RingGlyph{}
	case pointplot.SolidCirclePoint:
		return draw.CircleGlyph{}
	case pointplot.SquarePoint:
		return draw.SquareGlyph{}
	case pointplot.SolidSquarePoint:
		return draw.BoxGlyph{}
	case pointplot.DiamondPoint:
		return diamondGlyph{}
	case pointplot.DeltaPoint:
		return draw.TriangleGlyph{}
	case pointplot.NablaPoint:
		return draw.PyramidGlyph{}
	case pointplot.CrossPoint:
		return draw.CrossGlyph{}
	case pointplot.PlusPoint:
		return draw.PlusGlyph{}
	}
	return blankGlyph{}
}

// blankGlyph draws nothing.
type blankGlyph struct{}

func (blankGlyph) DrawGlyph(*draw.Canvas, draw.GlyphStyle, vg.Point) {}

// diamondGlyph draws the outline of a square standing on its corner.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	r := sty.Radius
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Stroke(p)
}

// GlyphStyle is the gonum style of a single point. Size is the radius
// in points.
func GlyphStyle(pt pointplot.GrobPoint) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  pt.Color,
		Radius: vg.Points(pt.Size),
		Shape:  Glyph(pt.Shape),
	}
}

// LineStyle is the gonum style of a path. Size is the width in points.
func LineStyle(path pointplot.GrobPath) draw.LineStyle {
	width := vg.Points(path.Size)
	var dashes []vg.Length
	for _, d := range path.LineType.Dashes() {
		dashes = append(dashes, vg.Length(d)*width)
	}
	return draw.LineStyle{
		Color:  path.Color,
		Width:  width,
		Dashes: dashes,
	}
}
