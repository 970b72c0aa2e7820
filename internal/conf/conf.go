// Package conf reads the settings shared by the pointplot programs from
// command line flags or POINTPLOT_* environment variables. A flag given
// on the command line wins over the environment.
//
//	POINTPLOT_LOG       --log       debug, info, warn, error, fatal, panic (default info)
//	POINTPLOT_RENDERER  --renderer  gnuplot, image or term (default gnuplot)
//	POINTPLOT_OUT       --out       image file written by the image renderer (default plot.png)
package conf

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Names of the renderers.
const (
	Gnuplot = "gnuplot"
	Image   = "image"
	Term    = "term"
)

// Config holds the parsed settings.
type Config struct {
	LogLevel log.Level
	Renderer string
	Out      string
}

// EnvName is the environment variable backing flag name.
func EnvName(name string) string {
	return fmt.Sprintf("%s_%s", "POINTPLOT", strings.ToUpper(name))
}

// Parse reads args (without the program name) and the environment and
// sets the log level of the standard logger.
func Parse(appName string, args []string) (Config, error) {
	app := kingpin.New(appName, "Shows the points of a puzzle input.")
	logLevel := flag(app, "log", "Log level: debug, info, warn, error, fatal, panic").Default("info").String()
	renderer := flag(app, "renderer", "Where to draw the chart: gnuplot, image or term").
		Default(Gnuplot).Enum(Gnuplot, Image, Term)
	out := flag(app, "out", "Image file written by the image renderer, the extension selects the format").
		Default("plot.png").String()

	if _, err := app.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "could not parse command line flags")
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		return Config{}, errors.Wrapf(err, "bad %s", EnvName("log"))
	}
	log.SetLevel(level)

	return Config{LogLevel: level, Renderer: *renderer, Out: *out}, nil
}

func flag(app *kingpin.Application, name, help string) *kingpin.FlagClause {
	return app.Flag(name, help).Envar(EnvName(name))
}
