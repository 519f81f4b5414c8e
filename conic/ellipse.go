package conic

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// Ellipse is the standard ellipse x²/a² + y²/b² = 1 centered at the
// origin with its major axis along x.
type Ellipse struct {
	// A and B are the semi-major and semi-minor axes.
	A, B float64
	// C is the focal distance √(a²−b²).
	C float64
}

// NewEllipse creates a standard ellipse. It returns an error when the
// axes are not positive or when a < b, since the standard form requires
// the major axis along x.
func NewEllipse(a, b float64) (*Ellipse, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("conic: ellipse semi-axes must be positive, got a=%v b=%v", a, b)
	}
	if a < b {
		return nil, fmt.Errorf("conic: semi-major axis a (%v) must be at least the semi-minor axis b (%v)", a, b)
	}
	return &Ellipse{A: a, B: b, C: math.Sqrt(a*a - b*b)}, nil
}

// Foci returns the two foci F₁(−c, 0) and F₂(c, 0).
func (e *Ellipse) Foci() (f1, f2 mathfig.Vec3) {
	return mathfig.V(-e.C, 0, 0), mathfig.V(e.C, 0, 0)
}

// Vertices returns the four vertices in the order
// A₁(−a,0), A₂(a,0), B₁(0,−b), B₂(0,b).
func (e *Ellipse) Vertices() [4]mathfig.Vec3 {
	return [4]mathfig.Vec3{
		mathfig.V(-e.A, 0, 0),
		mathfig.V(e.A, 0, 0),
		mathfig.V(0, -e.B, 0),
		mathfig.V(0, e.B, 0),
	}
}

// Eccentricity returns c/a, zero for a circle.
func (e *Ellipse) Eccentricity() float64 {
	return e.C / e.A
}

// DirectrixX returns the positive directrix position a²/c. For a circle
// (c ≈ 0) there is no directrix and ok is false.
func (e *Ellipse) DirectrixX() (x float64, ok bool) {
	if e.C < mathfig.Epsilon {
		return 0, false
	}
	return e.A * e.A / e.C, true
}

// EllipseOptions selects which properties Build draws alongside the
// curve itself.
type EllipseOptions struct {
	ShowFoci        bool
	ShowVertices    bool
	ShowAxes        bool // dashed major and minor axes
	ShowDirectrices bool // dashed vertical directrix lines
}

// DefaultEllipseOptions shows foci and vertices only.
func DefaultEllipseOptions() EllipseOptions {
	return EllipseOptions{ShowFoci: true, ShowVertices: true}
}

// Build assembles the ellipse figure. A nil theme selects the default.
func (e *Ellipse) Build(theme *mathfig.Theme, opts EllipseOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	g.Add(&mathfig.Arc{
		RX: e.A, RY: e.B,
		Sweep: 2 * math.Pi,
		Style: t.Solid(),
	})

	if opts.ShowFoci {
		f1, f2 := e.Foci()
		g.Add(
			&mathfig.Dot{Center: f1, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Curve}},
			&mathfig.Dot{Center: f2, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Curve}},
		)
	}

	if opts.ShowVertices {
		for _, v := range e.Vertices() {
			g.Add(&mathfig.Dot{Center: v, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Curve}})
		}
	}

	if opts.ShowAxes {
		axisStyle := mathfig.Style{
			Color: t.Curve,
			Width: t.StrokeWidth * 0.5,
			Dash:  mathfig.NewDash(0.2, t.DashRatio),
		}
		g.Add(
			&mathfig.Line{Start: mathfig.V(-e.A, 0, 0), End: mathfig.V(e.A, 0, 0), Style: axisStyle},
			&mathfig.Line{Start: mathfig.V(0, -e.B, 0), End: mathfig.V(0, e.B, 0), Style: axisStyle},
		)
	}

	if opts.ShowDirectrices {
		if x, ok := e.DirectrixX(); ok {
			g.Add(e.directrices(t, x))
		} else {
			mathfig.Logger().Warn("ellipse is a circle, skipping directrices", "a", e.A, "b", e.B)
		}
	}

	return g
}

// directrices draws the two vertical dashed lines x = ±a²/c, extended
// past the curve by half the minor axis.
func (e *Ellipse) directrices(t *mathfig.Theme, x float64) *mathfig.Group {
	half := e.B * 1.5
	style := t.Helper()
	return mathfig.NewGroup(
		&mathfig.Line{Start: mathfig.V(-x, half, 0), End: mathfig.V(-x, -half, 0), Style: style},
		&mathfig.Line{Start: mathfig.V(x, half, 0), End: mathfig.V(x, -half, 0), Style: style},
	)
}
