// Package term draws charts as text.
package term

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	tm "github.com/buger/goterm"
	"github.com/vdobler/pointplot"
)

// Renderer writes a framed character chart. A nil Out writes to
// standard output. Zero Width and Height use the size of
// the terminal or 80x24 if that is unknown.
type Renderer struct {
	Out           io.Writer
	Width, Height int
}

var _ pointplot.Renderer = Renderer{}

// Shades are used for projected points, from far to near.
const Shades = ".:-=+*#%@"

func (r Renderer) Render(t *pointplot.Table, o pointplot.Options) error {
	layout, err := pointplot.Prepare(t, o)
	if err != nil {
		return err
	}

	w, h := r.size()
	if w < 8 || h < 6 {
		return fmt.Errorf("terminal too small: %dx%d", w, h)
	}

	// Title, box of h-2 lines and the axis line below.
	box := tm.NewBox(w, h-2, 0)
	grid := Rasterize(layout, w-4, h-4)
	for _, row := range grid {
		fmt.Fprintln(box, string(row))
	}

	var sb strings.Builder
	sb.WriteString(tm.Bold(layout.Title))
	sb.WriteString("\n")
	sb.WriteString(box.String())
	sb.WriteString("\n")
	sb.WriteString(axisLine(layout))
	sb.WriteString("\n")

	if r.Out == nil {
		if _, err := tm.Output.WriteString(sb.String()); err != nil {
			return err
		}
		return tm.Output.Flush()
	}
	_, err = io.WriteString(r.Out, sb.String())
	return err
}

func (r Renderer) size() (w, h int) {
	w, h = r.Width, r.Height
	if w == 0 {
		if w = tm.Width(); w <= 0 {
			w = 80
		}
	}
	if h == 0 {
		if h = tm.Height(); h <= 0 {
			h = 24
		}
	}
	return w, h
}

func axisLine(l *pointplot.Layout) string {
	if l.Projected {
		return fmt.Sprintf("view azimuth %g° elevation %g°", l.Projection.Azimuth, l.Projection.Elevation)
	}
	return fmt.Sprintf("%s: [%s, %s]  %s: [%s, %s]",
		l.XLabel, l.XScale.Levels[0], l.XScale.Levels[len(l.XScale.Levels)-1],
		l.YLabel, l.YScale.Levels[0], l.YScale.Levels[len(l.YScale.Levels)-1])
}

// Rasterize draws the grobs of l onto a w x h grid of runes, row 0 at
// the top. Paths are drawn with '*', points with the rune of their shape
// or, for projected data, with a shade by depth. Nearer points hide
// farther ones. Points with a NaN or infinite coordinate are left out,
// together with the path segments touching them.
func Rasterize(l *pointplot.Layout, w, h int) [][]rune {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", w))
	}
	cell := func(x, y float64) (int, int) {
		c := int(math.Round(l.XScale.Pos(x) * float64(w-1)))
		r := h - 1 - int(math.Round(l.YScale.Pos(y)*float64(h-1)))
		return c, r
	}
	set := func(c, r int, ch rune) {
		if r >= 0 && r < h && c >= 0 && c < w {
			grid[r][c] = ch
		}
	}

	for _, path := range l.Paths {
		if path.LineType == pointplot.BlankLine {
			continue
		}
		for i := 1; i < len(path.Points); i++ {
			if !finite(path.Points[i-1].X, path.Points[i-1].Y) || !finite(path.Points[i].X, path.Points[i].Y) {
				continue
			}
			c0, r0 := cell(path.Points[i-1].X, path.Points[i-1].Y)
			c1, r1 := cell(path.Points[i].X, path.Points[i].Y)
			drawLine(c0, r0, c1, r1, func(c, r int) { set(c, r, '*') })
		}
	}

	points := make([]pointplot.GrobPoint, 0, len(l.Points))
	for _, p := range l.Points {
		if finite(p.X, p.Y) {
			points = append(points, p)
		}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Depth < points[j].Depth })

	depth := pointplot.NewScale("depth")
	if l.Projected {
		for _, p := range points {
			depth.Train([]float64{p.Depth})
		}
		depth.Prepare()
	}
	shades := []rune(Shades)
	for _, p := range points {
		ch := p.Shape.Rune()
		if l.Projected {
			i := int(depth.Pos(p.Depth) * float64(len(shades)))
			if i >= len(shades) {
				i = len(shades) - 1
			} else if i < 0 {
				i = 0
			}
			ch = shades[i]
		}
		c, r := cell(p.X, p.Y)
		set(c, r, ch)
	}
	return grid
}

func finite(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

// drawLine calls plot for each cell on the line from (x0,y0) to (x1,y1).
func drawLine(x0, y0, x1, y1 int, plot func(int, int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
