package pointplot

import (
	log "github.com/sirupsen/logrus"
)

// Layout is a table prepared for drawing: coordinates are projected to
// the plane, the scales are trained and the rows are turned into grobs.
type Layout struct {
	Kind           Kind
	Title          string
	XLabel, YLabel string

	// Projected is set if the grobs are a 2D view onto 3D data. The
	// axes are then screen axes and carry no labels.
	Projected  bool
	Projection Projection

	XScale, YScale *Scale

	// EqualAspect is set if both scales cover the same span.
	EqualAspect bool

	Points []GrobPoint
	Paths  []GrobPath
}

// Grobs returns all grobs of l, paths first.
func (l *Layout) Grobs() []Grob {
	grobs := make([]Grob, 0, len(l.Paths)+len(l.Points))
	for _, p := range l.Paths {
		grobs = append(grobs, p)
	}
	for _, p := range l.Points {
		grobs = append(grobs, p)
	}
	return grobs
}

// Prepare lays out t according to o using the default theme.
func Prepare(t *Table, o Options) (*Layout, error) {
	return DefaultTheme.Prepare(t, o)
}

// Prepare lays out t according to o.
//
// Scatter3D data is projected with DefaultProjection, its points are
// coloured by depth and its axes always have equal aspect. Line charts
// get one path through all rows in order and, if o.Markers is set, a
// point per row.
func (th Theme) Prepare(t *Table, o Options) (*Layout, error) {
	if err := o.Validate(t); err != nil {
		return nil, err
	}

	l := &Layout{
		Kind:   o.Kind,
		Title:  o.Title,
		XScale: NewScale("x"),
		YScale: NewScale("y"),
	}

	xs, _ := t.Column(o.X)
	ys, _ := t.Column(o.Y)
	depth := make([]float64, len(xs))

	if o.Kind == Scatter3D {
		zs, _ := t.Column(o.Z)
		l.Projected = true
		l.Projection = DefaultProjection
		us, vs := make([]float64, len(xs)), make([]float64, len(xs))
		for i := range xs {
			us[i], vs[i], depth[i] = l.Projection.Project(xs[i], ys[i], zs[i])
		}
		xs, ys = us, vs
	} else {
		l.XLabel, l.YLabel = o.X, o.Y
	}

	l.XScale.Train(xs)
	l.YScale.Train(ys)
	l.XScale.Prepare()
	l.YScale.Prepare()
	if o.EqualAspect || l.Projected {
		EqualAspect(l.XScale, l.YScale)
		l.EqualAspect = true
	}

	if o.Kind == Line {
		l.Paths = append(l.Paths, th.path(xs, ys))
	}
	if o.Kind == Scatter3D || o.Markers {
		l.Points = th.points(xs, ys, depth, l.Projected)
	}

	log.WithFields(log.Fields{
		"kind":   o.Kind,
		"points": len(l.Points),
		"paths":  len(l.Paths),
		"x":      l.XScale.String(),
		"y":      l.YScale.String(),
	}).Debug("layout prepared")
	if log.IsLevelEnabled(log.TraceLevel) {
		for _, g := range l.Grobs() {
			log.Trace(g)
		}
	}
	return l, nil
}

func (th Theme) points(xs, ys, depth []float64, byDepth bool) []GrobPoint {
	style := MergeStyles(th.PointStyle, DefaultTheme.PointStyle)
	size := String2PointSize(style["size"])
	shape := String2PointShape(style["shape"])
	alpha := String2Float(style["alpha"], 0, 1)
	col := SetAlpha(String2Color(style["color"]), alpha)

	ds := NewScale("depth")
	if byDepth {
		ds.Train(depth)
		ds.Prepare()
	}

	points := make([]GrobPoint, len(xs))
	for i := range xs {
		points[i] = GrobPoint{
			X:     xs[i],
			Y:     ys[i],
			Depth: depth[i],
			Size:  size,
			Shape: shape,
			Color: col,
		}
		if byDepth {
			points[i].Color = SetAlpha(ColorRamp(ds.Pos(depth[i])), alpha)
		}
	}
	return points
}

func (th Theme) path(xs, ys []float64) GrobPath {
	style := MergeStyles(th.LineStyle, DefaultTheme.LineStyle)
	alpha := String2Float(style["alpha"], 0, 1)

	path := GrobPath{
		Points:   make([]XY, len(xs)),
		Size:     String2PointSize(style["size"]),
		LineType: String2LineType(style["linetype"]),
		Color:    SetAlpha(String2Color(style["color"]), alpha),
	}
	for i := range xs {
		path.Points[i] = XY{xs[i], ys[i]}
	}
	return path
}
