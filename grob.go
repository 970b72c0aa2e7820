package pointplot

import (
	"fmt"
	"image/color"
)

// XY is a point in the plane of the plot, in data units.
type XY struct{ X, Y float64 }

// Grob is a graphical object produced by Prepare. Renderers draw the
// concrete types GrobPoint and GrobPath.
type Grob interface {
	String() string
}

// -------------------------------------------------------------------------
// Grob Point

// GrobPoint is a single marker. Depth is the distance towards the viewer
// for projected 3D data and 0 otherwise.
type GrobPoint struct {
	X, Y, Depth float64
	Size        float64
	Shape       PointShape
	Color       color.Color
}

func (point GrobPoint) String() string {
	return fmt.Sprintf("Point(%.3f,%.3f d=%.3f %d %.1f %s)",
		point.X, point.Y, point.Depth, point.Shape, point.Size, colorString(point.Color))
}

// -------------------------------------------------------------------------
// Grob Path

// GrobPath is a polyline through Points in order.
type GrobPath struct {
	Points   []XY
	Size     float64
	LineType LineType
	Color    color.Color
}

func (path GrobPath) String() string {
	return fmt.Sprintf("Path(%d points %d %.1f %s)",
		len(path.Points), path.LineType, path.Size, colorString(path.Color))
}

func colorString(c color.Color) string {
	if c == nil {
		return "#--------"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
