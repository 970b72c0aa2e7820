// Command day08 shows the points of the day 8 puzzle input as a
// 3D scatter plot.
package main

import (
	"github.com/vdobler/pointplot"
	"github.com/vdobler/pointplot/internal/app"
)

func main() {
	app.Main(app.Dataset{
		Path:    "inputs/day08.txt",
		Columns: []string{"x", "y", "z"},
		Options: pointplot.Options{
			Kind:  pointplot.Scatter3D,
			X:     "x",
			Y:     "y",
			Z:     "z",
			Title: "Day 08 Points",
		},
	})
}
