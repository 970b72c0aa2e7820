// Package app runs one of the pointplot programs: load a dataset, log
// its summary and hand it to the configured renderer.
package app

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/vdobler/pointplot"
	"github.com/vdobler/pointplot/geom"
	"github.com/vdobler/pointplot/gnuplot"
	"github.com/vdobler/pointplot/internal/conf"
	"github.com/vdobler/pointplot/stat"
	"github.com/vdobler/pointplot/term"
)

// Dataset is a fixed input file, the names of its columns and the chart
// to draw from it.
type Dataset struct {
	Path    string
	Columns []string
	Options pointplot.Options
}

// NewRenderer returns the renderer selected in cfg.
func NewRenderer(cfg conf.Config) (pointplot.Renderer, error) {
	switch cfg.Renderer {
	case conf.Gnuplot:
		return gnuplot.Renderer{Persist: true, Debug: cfg.LogLevel >= log.DebugLevel}, nil
	case conf.Image:
		return geom.Renderer{Path: cfg.Out}, nil
	case conf.Term:
		return term.Renderer{}, nil
	}
	return nil, errors.Errorf("unknown renderer %q", cfg.Renderer)
}

// Run loads d and shows it with r. Nothing is rendered if loading fails.
func Run(d Dataset, r pointplot.Renderer) error {
	table, err := pointplot.Load(d.Path, d.Columns)
	if err != nil {
		return err
	}
	for _, s := range stat.Summarize(table) {
		log.WithField("path", d.Path).Debug(s)
	}
	lo, hi := stat.Extent(table)
	log.WithFields(log.Fields{"path": d.Path, "min": lo, "max": hi}).Debug("extent")
	return pointplot.Show(r, table, d.Options)
}

// Main is the body of a program drawing d. It exits with a non-zero
// status on error.
func Main(d Dataset) {
	cfg, err := conf.Parse(os.Args[0], os.Args[1:])
	check(err)
	r, err := NewRenderer(cfg)
	check(err)
	check(Run(d, r))
}

// check logs err and exits if it is not nil.
func check(err error) {
	if err != nil {
		log.Debugf("%+v", err)
		log.Fatalf("%v", err)
	}
}
