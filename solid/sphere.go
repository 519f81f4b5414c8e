package solid

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// SphereSkew is the default rim foreshortening for spheres, flatter than
// the other solids so the equator reads as a great circle.
const SphereSkew = 0.3

// Sphere is drawn as its contour circle with a skewed equator and prime
// meridian, plus the oblique coordinate axes through the center.
type Sphere struct {
	Radius float64
	// Skew foreshortens the equator depth and the meridian width.
	Skew float64
	// XAxisAngle is where the oblique x axis leaves the figure.
	XAxisAngle float64
	Center     mathfig.Vec3
}

// NewSphere creates a sphere with the default skew and x-axis angle.
func NewSphere(radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("solid: sphere radius must be positive, got %v", radius)
	}
	return &Sphere{Radius: radius, Skew: SphereSkew, XAxisAngle: DefaultXAxisAngle}, nil
}

// NorthPole returns the top of the contour circle.
func (s *Sphere) NorthPole() mathfig.Vec3 {
	return s.Center.Add(mathfig.Up.Mul(s.Radius))
}

// AxisEllipseIntersection returns where the oblique x axis crosses the
// equator ellipse, as an offset from the center. For the ray y = kx
// through x²/a² + y²/b² = 1 the crossing is at x = ±ab/√(b²+a²k²) with
// k = tan(XAxisAngle), the sign following the axis direction. A vertical
// axis crosses at (0, ±b).
func (s *Sphere) AxisEllipseIntersection() mathfig.Vec3 {
	a := s.Radius
	b := s.Radius * s.Skew
	cos, sin := math.Cos(s.XAxisAngle), math.Sin(s.XAxisAngle)

	if math.Abs(cos) < mathfig.Epsilon {
		if sin < 0 {
			return mathfig.V(0, -b, 0)
		}
		return mathfig.V(0, b, 0)
	}

	k := math.Tan(s.XAxisAngle)
	x := a * b / math.Sqrt(b*b+a*a*k*k)
	if cos < 0 {
		x = -x
	}
	return mathfig.V(x, k*x, 0)
}

// SphereOptions selects the annotations.
type SphereOptions struct {
	ShowEquator  bool
	ShowMeridian bool
	ShowAxes     bool
	ShowLabels   bool // O at the center, N at the north pole
}

// DefaultSphereOptions shows everything.
func DefaultSphereOptions() SphereOptions {
	return SphereOptions{ShowEquator: true, ShowMeridian: true, ShowAxes: true, ShowLabels: true}
}

// Build draws the sphere. A nil theme selects the default.
func (s *Sphere) Build(theme *mathfig.Theme, opts SphereOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	g.Add(&mathfig.Arc{
		Center: s.Center, RX: s.Radius, RY: s.Radius,
		Sweep: 2 * math.Pi,
		Style: t.Solid(),
	})

	if opts.ShowEquator {
		g.Add(s.greatCircle(t, s.Radius, s.Radius*s.Skew, 0))
	}
	if opts.ShowMeridian {
		// The meridian skews on the horizontal dimension; its near half
		// faces right, a quarter turn from the equator split.
		g.Add(s.greatCircle(t, s.Radius*s.Skew, s.Radius, math.Pi/2))
	}

	if opts.ShowAxes {
		g.Add(s.axes(t))
	}
	if opts.ShowLabels {
		g.Add(
			&mathfig.Dot{Center: s.Center, Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			centerLabel(t, "O", s.Center),
			apexLabel(t, "N", s.NorthPole()),
		)
	}

	return g
}

// greatCircle draws one great circle as a near solid arc and a far
// dashed arc in the muted helper color, split at phase.
func (s *Sphere) greatCircle(t *mathfig.Theme, rx, ry, phase float64) *mathfig.Group {
	width := t.StrokeWidth * 0.5
	return mathfig.NewGroup(
		&mathfig.Arc{
			Center: s.Center, RX: rx, RY: ry,
			Start: phase + math.Pi, Sweep: math.Pi,
			Style: mathfig.Style{Color: t.Muted, Width: width},
		},
		&mathfig.Arc{
			Center: s.Center, RX: rx, RY: ry,
			Start: phase, Sweep: math.Pi,
			Style: mathfig.Style{Color: t.Muted, Width: width, Dash: mathfig.NewDash(t.DashLength, 0.5)},
		},
	)
}

// axes draws the oblique axes: the x axis runs inside the sphere only to
// its equator crossing, y and z to the contour.
func (s *Sphere) axes(t *mathfig.Theme) *mathfig.Group {
	hit := s.AxisEllipseIntersection()
	xdir := mathfig.V(math.Cos(s.XAxisAngle), math.Sin(s.XAxisAngle), 0)

	g := BuildAxes(t, s.Center, []AxisSpec{
		{Name: "x", Dir: xdir, Surface: hit.Length(), Color: t.XAxis},
		{Name: "y", Dir: mathfig.Right, Surface: s.Radius, Color: t.YAxis},
		{Name: "z", Dir: mathfig.Up, Surface: s.Radius, Color: t.ZAxis},
	})
	g.Add(&mathfig.Dot{
		Center: s.Center.Add(hit),
		Radius: t.PointRadius * 0.7,
		Style:  mathfig.Style{Color: t.XAxis},
	})
	return g
}
