package solid

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// Cone is a right circular cone standing on its base.
type Cone struct {
	Radius, Height float64
	// Skew foreshortens the rim depth (default DefaultSkew).
	Skew   float64
	Center mathfig.Vec3 // base center in the drawing plane
}

// NewCone creates a cone with the default rim skew.
func NewCone(radius, height float64) (*Cone, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: cone radius and height must be positive, got %v/%v", radius, height)
	}
	return &Cone{Radius: radius, Height: height, Skew: DefaultSkew}, nil
}

// Apex returns the tip of the cone.
func (c *Cone) Apex() mathfig.Vec3 {
	return c.Center.Add(mathfig.Up.Mul(c.Height))
}

// TangentOffsets returns where the slant silhouette touches the base rim
// ellipse, as offsets from the base center. For the rim semi-axes
// (a, b) = (Radius, Radius·Skew) and an apex at height h, the tangency
// condition gives y = b²/h and x = a·√(1−b²/h²); the point lands exactly
// on the ellipse. An apex at or below the rim top degenerates to the rim
// endpoints (a, 0).
func (c *Cone) TangentOffsets() (x, y float64) {
	b := c.Radius * c.Skew
	if c.Height <= b+mathfig.Epsilon {
		mathfig.Logger().Warn("cone apex at or below the rim top, slant edges touch the rim endpoints",
			"height", c.Height, "rimSemiAxis", b)
		return c.Radius, 0
	}
	y = b * b / c.Height
	x = c.Radius * math.Sqrt(1-(b*b)/(c.Height*c.Height))
	return x, y
}

// ConeOptions selects the annotations.
type ConeOptions struct {
	ViewFromBelow bool
	ShowLabels    bool // O at the base center, S at the apex
	ShowAxis      bool // dashed axis of revolution
}

// DefaultConeOptions shows the labels.
func DefaultConeOptions() ConeOptions {
	return ConeOptions{ShowLabels: true}
}

// Build draws the cone: the base rim split near/far and the two slant
// edges running from the tangent points to the apex. A nil theme selects
// the default.
func (c *Cone) Build(theme *mathfig.Theme, opts ConeOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	near, far := rimArcs(t, c.Center, c.Radius, c.Radius*c.Skew, opts.ViewFromBelow)
	g.Add(near, far)

	x, y := c.TangentOffsets()
	apex := c.Apex()
	g.Add(
		&mathfig.Line{Start: c.Center.Add(mathfig.V(-x, y, 0)), End: apex, Style: t.Solid()},
		&mathfig.Line{Start: c.Center.Add(mathfig.V(x, y, 0)), End: apex, Style: t.Solid()},
	)

	if opts.ShowAxis {
		g.Add(&mathfig.Line{Start: c.Center, End: apex, Style: t.Helper()})
	}
	if opts.ShowLabels {
		g.Add(
			&mathfig.Dot{Center: c.Center, Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			centerLabel(t, "O", c.Center),
			apexLabel(t, "S", apex),
		)
	}

	return g
}
