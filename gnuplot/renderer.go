// Package gnuplot shows charts in an interactive gnuplot window.
//
// The gnuplot executable must be installed and on the PATH.
package gnuplot

import (
	"fmt"
	"strings"

	"github.com/Arafatk/glot"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vdobler/pointplot"
)

// Renderer opens a gnuplot window. With Persist set the window stays
// open after the program exits, Debug echoes all gnuplot commands.
type Renderer struct {
	Persist bool
	Debug   bool
}

var _ pointplot.Renderer = Renderer{}

// Session is the part of a glot plot a Script is played on.
type Session interface {
	Cmd(format string, a ...interface{}) error
	AddPointGroup(name string, style string, data interface{}) error
}

// Script is the sequence of gnuplot commands drawing one chart. Data is
// one slice per dimension.
type Script struct {
	Dimensions int
	Setup      []string
	Name       string
	Style      string
	Data       [][]float64
}

// NewScript builds the script for t. Scatter3D charts use splot with
// the raw coordinates, gnuplot does the projection itself and the
// view can be rotated with the mouse.
func NewScript(t *pointplot.Table, o pointplot.Options) (*Script, error) {
	if err := o.Validate(t); err != nil {
		return nil, err
	}

	s := &Script{
		Dimensions: len(o.Slots()),
		Name:       strings.Join(o.Slots(), "/"),
	}
	if o.Title != "" {
		s.Setup = append(s.Setup, fmt.Sprintf("set title %s", quote(o.Title)))
	}
	axes := []string{"x", "y", "z"}
	for i, column := range o.Slots() {
		values, _ := t.Column(column)
		s.Data = append(s.Data, values)
		s.Setup = append(s.Setup, fmt.Sprintf("set %slabel %s", axes[i], quote(column)))
	}

	switch {
	case o.Kind == pointplot.Scatter3D:
		s.Style = "points"
		s.Setup = append(s.Setup, "set view equal xyz")
	case o.Markers:
		s.Style = "lp"
	default:
		s.Style = "lines"
	}
	if o.EqualAspect && o.Kind == pointplot.Line {
		s.Setup = append(s.Setup, "set size ratio -1")
	}
	return s, nil
}

// Play sends the script to gnuplot. Settings come first as adding the
// point group draws the chart.
func (s *Script) Play(session Session) error {
	for _, cmd := range s.Setup {
		if err := session.Cmd("%s", cmd); err != nil {
			return errors.Wrapf(err, "gnuplot command %q", cmd)
		}
	}
	return errors.Wrap(session.AddPointGroup(s.Name, s.Style, s.Data), "gnuplot plot")
}

// Render draws t in a new gnuplot window.
func (r Renderer) Render(t *pointplot.Table, o pointplot.Options) error {
	script, err := NewScript(t, o)
	if err != nil {
		return err
	}

	p, err := glot.NewPlot(script.Dimensions, r.Persist, r.Debug)
	if err != nil {
		return errors.Wrap(err, "cannot start gnuplot")
	}
	defer p.Close()

	log.WithFields(log.Fields{
		"dimensions": script.Dimensions,
		"style":      script.Style,
		"rows":       t.N(),
	}).Debug("sending chart to gnuplot")
	return script.Play(p)
}

// quote makes s a double quoted gnuplot string.
func quote(s string) string {
	s = strings.Replace(s, `\`, `\\`, -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return `"` + s + `"`
}
