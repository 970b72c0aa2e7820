package pointplot

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Kind selects the type of chart.
type Kind int

const (
	Scatter3D Kind = iota + 1 // points in space, needs X, Y and Z
	Line                      // points connected in row order, needs X and Y
)

func (k Kind) String() string {
	switch k {
	case Scatter3D:
		return "scatter3d"
	case Line:
		return "line"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Options describe how a table is to be drawn.
type Options struct {
	Kind Kind

	// X, Y and Z name the columns mapped to the axes. Z is used by
	// Scatter3D only and must be empty otherwise.
	X, Y, Z string

	Title string

	// Markers draws a point for each row of a Line chart. Scatter3D
	// charts always show their points.
	Markers bool

	// EqualAspect forces one unit on the x axis to be as long as one
	// unit on the y axis.
	EqualAspect bool
}

// Slots returns the column names o maps to axes, in axis order.
func (o Options) Slots() []string {
	if o.Kind == Scatter3D {
		return []string{o.X, o.Y, o.Z}
	}
	return []string{o.X, o.Y}
}

// Validate checks that o can be used to draw t.
func (o Options) Validate(t *Table) error {
	switch o.Kind {
	case Scatter3D:
	case Line:
		if o.Z != "" {
			return fmt.Errorf("%s chart cannot use z column %q", o.Kind, o.Z)
		}
	default:
		return fmt.Errorf("unknown chart kind %s", o.Kind)
	}

	for _, slot := range o.Slots() {
		if slot == "" {
			return fmt.Errorf("%s chart needs columns %v", o.Kind, o.Slots())
		}
	}

	missing := NewStringSetFrom(o.Slots())
	missing.Remove(NewStringSetFrom(t.columns))
	if len(missing) > 0 {
		return &ColumnError{Name: missing.Elements()[0], Reason: "no such column"}
	}
	return nil
}

// Renderer draws a table. Implementations live in the subpackages geom,
// gnuplot and term.
type Renderer interface {
	Render(t *Table, o Options) error
}

// Show validates o and hands t to r.
func Show(r Renderer, t *Table, o Options) error {
	if err := o.Validate(t); err != nil {
		return errors.Wrap(err, "invalid plot options")
	}

	log.WithFields(log.Fields{
		"kind":     o.Kind,
		"title":    o.Title,
		"rows":     t.N(),
		"renderer": fmt.Sprintf("%T", r),
	}).Debug("rendering table")

	return errors.Wrapf(r.Render(t, o), "rendering %q", o.Title)
}
