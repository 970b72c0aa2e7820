package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vdobler/pointplot"
)

func TestRasterizeLine(t *testing.T) {
	table, _ := pointplot.NewTable([]string{"x", "y"}, []pointplot.Record{{0, 0}, {10, 0}, {10, 10}})
	layout, err := pointplot.Prepare(table, pointplot.Options{Kind: pointplot.Line, X: "x", Y: "y", Markers: true, EqualAspect: true})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	grid := Rasterize(layout, 23, 23)
	if len(grid) != 23 || len(grid[0]) != 23 {
		t.Fatalf("Got grid %dx%d", len(grid[0]), len(grid))
	}

	marker := pointplot.DefaultTheme.PointStyle["shape"]
	want := pointplot.String2PointShape(marker).Rune()
	// The axes are expanded by 5%: 0 maps to cell 1, 10 to cell 21.
	for _, cell := range [][2]int{{1, 21}, {21, 21}, {21, 1}} {
		if got := grid[cell[1]][cell[0]]; got != want {
			t.Errorf("Cell %v = %q, want %q", cell, got, want)
		}
	}
	if got := grid[21][10]; got != '*' {
		t.Errorf("Bottom edge cell = %q", got)
	}
	if got := grid[10][21]; got != '*' {
		t.Errorf("Right edge cell = %q", got)
	}
	if got := grid[10][10]; got != ' ' {
		t.Errorf("Inner cell = %q", got)
	}
}

func TestRasterizeScatter3D(t *testing.T) {
	table, _ := pointplot.NewTable([]string{"x", "y", "z"}, []pointplot.Record{{0, 0, 0}, {1, 1, 1}, {5, -3, 2}})
	layout, _ := pointplot.Prepare(table, pointplot.Options{Kind: pointplot.Scatter3D, X: "x", Y: "y", Z: "z"})

	grid := Rasterize(layout, 40, 20)
	shades := 0
	for _, row := range grid {
		for _, ch := range row {
			if strings.ContainsRune(Shades, ch) {
				shades++
			}
		}
	}
	if shades != 3 {
		t.Errorf("Got %d shaded cells, want 3", shades)
	}
}

func TestRender(t *testing.T) {
	table, _ := pointplot.NewTable([]string{"x", "y"}, []pointplot.Record{{0, 0}, {1, 1}, {2, 4}})
	var buf bytes.Buffer
	r := Renderer{Out: &buf, Width: 40, Height: 16}

	err := r.Render(table, pointplot.Options{Kind: pointplot.Line, X: "x", Y: "y", Title: "Day 09 Points"})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 16 {
		t.Errorf("Got %d lines, want 16:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Day 09 Points") {
		t.Errorf("Missing title in %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "┌") || !strings.HasPrefix(lines[14], "└") {
		t.Errorf("Missing frame:\n%s", out)
	}
	if !strings.HasPrefix(lines[15], "x: [") {
		t.Errorf("Missing axis line %q", lines[15])
	}
	if !strings.Contains(out, "*") {
		t.Errorf("Missing path:\n%s", out)
	}

	if err := (Renderer{Out: &buf, Width: 4, Height: 4}).Render(table, pointplot.Options{Kind: pointplot.Line, X: "x", Y: "y"}); err == nil {
		t.Errorf("Missing error for tiny terminal")
	}
}

func TestRenderSkipsNaN(t *testing.T) {
	table, err := pointplot.Parse(strings.NewReader("0,0\nnan,1\n2,2\ninf,3"), []string{"x", "y"})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		r := Renderer{Out: &buf, Width: 40, Height: 12}
		done <- r.Render(table, pointplot.Options{Kind: pointplot.Line, X: "x", Y: "y", Markers: true})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Unexpected error %s", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Render did not return")
	}
	if buf.Len() == 0 {
		t.Errorf("Nothing rendered")
	}
}
