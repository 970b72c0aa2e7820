package pointplot

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Projection is an orthographic view onto 3D data. The camera looks at
// the origin from the direction given by Azimuth (rotation around the
// z axis, counted from the x axis) and Elevation (angle above the x-y
// plane), both in degrees.
type Projection struct {
	Azimuth, Elevation float64
}

// DefaultProjection is the view used for Scatter3D charts.
var DefaultProjection = Projection{Azimuth: -60, Elevation: 30}

// basis returns the screen right and up vectors and the direction
// towards the viewer.
func (p Projection) basis() (right, up, toward r3.Vec) {
	az := p.Azimuth * math.Pi / 180
	el := p.Elevation * math.Pi / 180
	saz, caz := math.Sincos(az)
	sel, cel := math.Sincos(el)

	right = r3.Vec{X: -saz, Y: caz, Z: 0}
	up = r3.Vec{X: -sel * caz, Y: -sel * saz, Z: cel}
	toward = r3.Vec{X: cel * caz, Y: cel * saz, Z: sel}
	return right, up, toward
}

// Project maps (x,y,z) to screen coordinates (u,v). Depth grows
// towards the viewer.
func (p Projection) Project(x, y, z float64) (u, v, depth float64) {
	right, up, toward := p.basis()
	pt := r3.Vec{X: x, Y: y, Z: z}
	return r3.Dot(pt, right), r3.Dot(pt, up), r3.Dot(pt, toward)
}
