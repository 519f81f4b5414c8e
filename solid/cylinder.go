package solid

import (
	"fmt"

	"github.com/gogpu/mathfig"
)

// Cylinder is a right circular cylinder standing on its base.
type Cylinder struct {
	Radius, Height float64
	// Skew foreshortens the rim depth (default DefaultSkew).
	Skew   float64
	Center mathfig.Vec3 // base center in the drawing plane
}

// NewCylinder creates a cylinder with the default rim skew.
func NewCylinder(radius, height float64) (*Cylinder, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: cylinder radius and height must be positive, got %v/%v", radius, height)
	}
	return &Cylinder{Radius: radius, Height: height, Skew: DefaultSkew}, nil
}

// TopCenter returns the center of the top face.
func (c *Cylinder) TopCenter() mathfig.Vec3 {
	return c.Center.Add(mathfig.Up.Mul(c.Height))
}

// CylinderOptions selects the annotations.
type CylinderOptions struct {
	ViewFromBelow bool
	ShowLabels    bool // O at the base center, O1 at the top center
	ShowAxis      bool // dashed axis of revolution
}

// DefaultCylinderOptions shows the center labels.
func DefaultCylinderOptions() CylinderOptions {
	return CylinderOptions{ShowLabels: true}
}

// Build draws the cylinder: the base rim split near/far, the full top
// ellipse, and the two silhouette sides. A nil theme selects the default.
func (c *Cylinder) Build(theme *mathfig.Theme, opts CylinderOptions) *mathfig.Group {
	t := theme.OrDefault()
	ry := c.Radius * c.Skew
	g := mathfig.NewGroup()

	near, far := rimArcs(t, c.Center, c.Radius, ry, opts.ViewFromBelow)
	g.Add(near, far)
	g.Add(fullEllipse(t, c.TopCenter(), c.Radius, ry))

	left := c.Center.Add(mathfig.Left.Mul(c.Radius))
	right := c.Center.Add(mathfig.Right.Mul(c.Radius))
	lift := mathfig.Up.Mul(c.Height)
	g.Add(
		&mathfig.Line{Start: left, End: left.Add(lift), Style: t.Solid()},
		&mathfig.Line{Start: right, End: right.Add(lift), Style: t.Solid()},
	)

	if opts.ShowAxis {
		g.Add(&mathfig.Line{Start: c.Center, End: c.TopCenter(), Style: t.Helper()})
	}
	if opts.ShowLabels {
		g.Add(
			&mathfig.Dot{Center: c.Center, Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			centerLabel(t, "O", c.Center),
			&mathfig.Dot{Center: c.TopCenter(), Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			apexLabel(t, "O1", c.TopCenter()),
		)
	}

	return g
}
