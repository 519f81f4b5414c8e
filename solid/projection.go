package solid

import (
	"math"

	"github.com/gogpu/mathfig"
)

// Projection flattens model coordinates to the drawing plane using the
// cavalier oblique convention: Y maps to the horizontal axis, Z to the
// vertical axis, and the depth axis X recedes at Angle below the
// horizontal, foreshortened by Shortening.
type Projection struct {
	Shortening float64
	Angle      float64
}

// DefaultProjection is the textbook convention: depth halved, receding
// axis at 45°.
func DefaultProjection() Projection {
	return Projection{Shortening: 0.5, Angle: 45 * mathfig.Degree}
}

// orDefault substitutes the textbook projection for a zero value.
func (p Projection) orDefault() Projection {
	if p.Shortening == 0 {
		return DefaultProjection()
	}
	return p
}

// Project maps a model point to the drawing plane.
func (p Projection) Project(m mathfig.Vec3) mathfig.Vec3 {
	return mathfig.V(
		m.Y-m.X*p.Shortening*math.Cos(p.Angle),
		m.Z-m.X*p.Shortening*math.Sin(p.Angle),
		0,
	)
}

// DefaultCamera returns the viewpoint implied by the oblique convention:
// in front of the solid, slightly right of and above the depth axis
// (spherical r=15, elevation 30°, azimuth 20° in the depth-right-up
// frame). Solids whose faces point into the positive octant read as
// front-facing from here.
func DefaultCamera() mathfig.Vec3 {
	const (
		r    = 15.0
		elev = 30 * mathfig.Degree
		azim = 20 * mathfig.Degree
	)
	h := r * math.Cos(elev)
	return mathfig.V(h*math.Cos(azim), h*math.Sin(azim), r*math.Sin(elev))
}
