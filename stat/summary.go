// Package stat computes summary statistics of coordinate tables.
package stat

import (
	"fmt"
	"math"

	"github.com/vdobler/pointplot"
	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Summary describes the values of one column.
type Summary struct {
	Column    string
	N         int
	Min, Max  float64
	Mean, Std float64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: n=%d min=%g max=%g mean=%g std=%g",
		s.Column, s.N, s.Min, s.Max, s.Mean, s.Std)
}

// Summarize computes a Summary for each column of t in column order.
// Statistics of an empty table are NaN, the standard deviation of a
// single row is 0.
func Summarize(t *pointplot.Table) []Summary {
	columns := t.Columns()
	summaries := make([]Summary, len(columns))
	for i, name := range columns {
		values, _ := t.Column(name)
		summaries[i] = summarize(name, values)
	}
	return summaries
}

func summarize(name string, values []float64) Summary {
	s := Summary{
		Column: name,
		N:      len(values),
		Min:    math.NaN(),
		Max:    math.NaN(),
		Mean:   math.NaN(),
		Std:    math.NaN(),
	}
	if len(values) == 0 {
		return s
	}

	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Mean, s.Std = gstat.MeanStdDev(values, nil)
	if len(values) == 1 {
		s.Std = 0
	}
	return s
}

// Extent is the axis aligned bounding box of all rows of t, given as
// the Min and Max of each column.
func Extent(t *pointplot.Table) (min, max pointplot.Record) {
	summaries := Summarize(t)
	min = make(pointplot.Record, len(summaries))
	max = make(pointplot.Record, len(summaries))
	for i, s := range summaries {
		min[i], max[i] = s.Min, s.Max
	}
	return min, max
}
