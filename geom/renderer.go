// Package geom draws prepared layouts into image files using gonum/plot.
package geom

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vdobler/pointplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Renderer saves a chart to an image file. The format is determined by
// the extension of Path: .png, .svg, .pdf, .eps, .jpg, .tif.
type Renderer struct {
	Path          string
	Width, Height vg.Length // zero values default to 6 inch
}

var _ pointplot.Renderer = Renderer{}

// Render draws t into r.Path.
func (r Renderer) Render(t *pointplot.Table, o pointplot.Options) error {
	layout, err := pointplot.Prepare(t, o)
	if err != nil {
		return err
	}

	p, err := Plot(layout)
	if err != nil {
		return err
	}

	w, h := r.size(layout)
	if err := p.Save(w, h, r.Path); err != nil {
		return errors.Wrapf(err, "saving plot to %s", r.Path)
	}
	log.WithField("path", r.Path).Info("plot saved")
	return nil
}

// size keeps the canvas square for equal aspect charts.
func (r Renderer) size(layout *pointplot.Layout) (w, h vg.Length) {
	w, h = r.Width, r.Height
	if w == 0 {
		w = 6 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	if layout.EqualAspect && w != h {
		if w < h {
			h = w
		} else {
			w = h
		}
	}
	return w, h
}

// Plot turns the layout into a gonum plot: paths become lines, points
// become a scatter with one glyph style per point.
func Plot(layout *pointplot.Layout) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = layout.Title
	p.X.Label.Text = layout.XLabel
	p.Y.Label.Text = layout.YLabel
	p.X.Min, p.X.Max = layout.XScale.Min, layout.XScale.Max
	p.Y.Min, p.Y.Max = layout.YScale.Min, layout.YScale.Max
	p.Add(plotter.NewGrid())

	if layout.Projected {
		// Screen axes of a projection carry no meaning.
		p.HideAxes()
	}

	for _, path := range layout.Paths {
		if path.LineType == pointplot.BlankLine || len(path.Points) == 0 {
			continue
		}
		line, err := plotter.NewLine(pathXYs(path))
		if err != nil {
			return nil, errors.Wrap(err, "cannot create line")
		}
		line.LineStyle = LineStyle(path)
		p.Add(line)
	}

	if len(layout.Points) > 0 {
		points := layout.Points
		scatter, err := plotter.NewScatter(pointXYs(points))
		if err != nil {
			return nil, errors.Wrap(err, "cannot create scatter")
		}
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			return GlyphStyle(points[i])
		}
		p.Add(scatter)
	}

	return p, nil
}

func pathXYs(path pointplot.GrobPath) plotter.XYs {
	xys := make(plotter.XYs, len(path.Points))
	for i, pt := range path.Points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

func pointXYs(points []pointplot.GrobPoint) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}
