// Command day09 shows the points of the day 9 puzzle input as a line
// chart with markers and equal axis scaling.
package main

import (
	"github.com/vdobler/pointplot"
	"github.com/vdobler/pointplot/internal/app"
)

func main() {
	app.Main(app.Dataset{
		Path:    "inputs/day09.txt",
		Columns: []string{"x", "y"},
		Options: pointplot.Options{
			Kind:        pointplot.Line,
			X:           "x",
			Y:           "y",
			Title:       "Day 09 Points",
			Markers:     true,
			EqualAspect: true,
		},
	})
}
