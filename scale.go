package pointplot

import (
	"fmt"
	"math"
)

// Scale is a continuous position scale like the x- or y-axis.
type Scale struct {
	Aesthetic string // "x", "y" or "depth"

	// Domain is the range of the data the scale was trained on.
	DomainMin, DomainMax float64

	// Min and Max are the limits of the axis. Set up by Prepare.
	Min, Max float64

	// Breaks and Levels are the tic positions and labels. Set up by
	// Prepare.
	Breaks []float64
	Levels []string
}

// NewScale sets up an untrained scale for the given aesthetic.
func NewScale(aesthetic string) *Scale {
	return &Scale{
		Aesthetic: aesthetic,
		DomainMin: math.Inf(+1),
		DomainMax: math.Inf(-1),
	}
}

// Trained reports whether s has seen any non-NaN data.
func (s *Scale) Trained() bool {
	return s.DomainMin <= s.DomainMax
}

// Train updates the domain of s to include all values. NaNs and
// infinities are ignored.
func (s *Scale) Train(values []float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Prepare expands the domain by 5% on each side and computes breaks.
// An untrained scale covers [0,1], a single value v covers [v-0.5,v+0.5].
func (s *Scale) Prepare() {
	switch {
	case !s.Trained():
		s.Min, s.Max = 0, 1
	case s.DomainMin == s.DomainMax:
		s.Min, s.Max = s.DomainMin-0.5, s.DomainMax+0.5
	default:
		expand := (s.DomainMax - s.DomainMin) * 0.05
		s.Min, s.Max = s.DomainMin-expand, s.DomainMax+expand
	}
	s.prepareBreaks()
}

func (s *Scale) prepareBreaks() {
	nb := 6
	span := s.Max - s.Min
	s.Breaks = make([]float64, nb+1)
	s.Levels = make([]string, nb+1)
	for i := range s.Breaks {
		x := s.Min + float64(i)*span/float64(nb)
		s.Breaks[i] = x
		s.Levels[i] = fmt.Sprintf("%.4g", x)
	}
}

// Span is the length of the prepared axis.
func (s *Scale) Span() float64 { return s.Max - s.Min }

// Pos maps x to [0,1] on the prepared axis.
func (s *Scale) Pos(x float64) float64 {
	return (x - s.Min) / s.Span()
}

// widen grows the prepared axis symmetrically to the given span.
func (s *Scale) widen(span float64) {
	if span <= s.Span() {
		return
	}
	mid := (s.Min + s.Max) / 2
	s.Min, s.Max = mid-span/2, mid+span/2
	s.prepareBreaks()
}

// EqualAspect widens the shorter of the two prepared scales so that both
// cover the same span.
func EqualAspect(x, y *Scale) {
	span := math.Max(x.Span(), y.Span())
	x.widen(span)
	y.widen(span)
}

func (s *Scale) String() string {
	return fmt.Sprintf("Scale %s domain=[%g,%g] axis=[%g,%g]",
		s.Aesthetic, s.DomainMin, s.DomainMax, s.Min, s.Max)
}
