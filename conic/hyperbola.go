package conic

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// Branch selects which branches of a hyperbola to draw.
type Branch int

const (
	BothBranches Branch = iota
	LeftBranch
	RightBranch
)

// Hyperbola is the standard hyperbola x²/a² − y²/b² = 1 centered at the
// origin, opening along x.
type Hyperbola struct {
	// A and B are the real and imaginary semi-axes.
	A, B float64
	// C is the focal distance √(a²+b²).
	C float64
	// RenderExtent is how far past the vertex (in x) each branch is
	// sampled. This is a cosmetic choice, not an asymptotic bound: the
	// curve has no natural endpoint, the drawing has to stop somewhere.
	RenderExtent float64
	// Samples is the number of points per half-branch.
	Samples int
}

// DefaultRenderExtent is the traditional x-extension of a drawn branch.
const DefaultRenderExtent = 4.0

// NewHyperbola creates a standard hyperbola with the default render
// extent and sampling density.
func NewHyperbola(a, b float64) (*Hyperbola, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("conic: hyperbola semi-axes must be positive, got a=%v b=%v", a, b)
	}
	return &Hyperbola{
		A: a, B: b,
		C:            math.Sqrt(a*a + b*b),
		RenderExtent: DefaultRenderExtent,
		Samples:      80,
	}, nil
}

// Foci returns the two foci F₁(−c, 0) and F₂(c, 0).
func (h *Hyperbola) Foci() (f1, f2 mathfig.Vec3) {
	return mathfig.V(-h.C, 0, 0), mathfig.V(h.C, 0, 0)
}

// Vertices returns the two vertices A₁(−a, 0) and A₂(a, 0).
func (h *Hyperbola) Vertices() (v1, v2 mathfig.Vec3) {
	return mathfig.V(-h.A, 0, 0), mathfig.V(h.A, 0, 0)
}

// AsymptoteSlope returns b/a, the slope of the asymptotes y = ±(b/a)x.
func (h *Hyperbola) AsymptoteSlope() float64 {
	return h.B / h.A
}

// DirectrixX returns the positive directrix position a²/c.
func (h *Hyperbola) DirectrixX() float64 {
	return h.A * h.A / h.C
}

// BranchPoints samples one half of one branch: y = sign·b·√(x²/a²−1) for
// x from a to a+RenderExtent, mirrored to negative x for the left branch.
func (h *Hyperbola) BranchPoints(left bool, lower bool) []mathfig.Vec3 {
	n := h.Samples
	if n < 2 {
		n = 2
	}
	pts := make([]mathfig.Vec3, 0, n)
	step := h.RenderExtent / float64(n-1)
	for i := 0; i < n; i++ {
		x := h.A + float64(i)*step
		y := h.B * math.Sqrt(x*x/(h.A*h.A)-1)
		if lower {
			y = -y
		}
		if left {
			x = -x
		}
		pts = append(pts, mathfig.V(x, y, 0))
	}
	return pts
}

// OnBranch reports the residual |x²/a² − y²/b² − 1| for a point.
func (h *Hyperbola) OnBranch(p mathfig.Vec3) float64 {
	return math.Abs(p.X*p.X/(h.A*h.A) - p.Y*p.Y/(h.B*h.B) - 1)
}

// HyperbolaOptions selects which properties Build draws.
type HyperbolaOptions struct {
	Branch          Branch
	ShowFoci        bool
	ShowVertices    bool
	ShowAsymptotes  bool
	AsymptoteLabels bool
	ShowDirectrices bool
	DirectrixLabels bool
}

// DefaultHyperbolaOptions shows both branches with foci, vertices and
// asymptotes.
func DefaultHyperbolaOptions() HyperbolaOptions {
	return HyperbolaOptions{ShowFoci: true, ShowVertices: true, ShowAsymptotes: true}
}

// Build assembles the hyperbola figure. A nil theme selects the default.
func (h *Hyperbola) Build(theme *mathfig.Theme, opts HyperbolaOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	curve := t.Solid()
	if opts.Branch == BothBranches || opts.Branch == LeftBranch {
		g.Add(
			&mathfig.Polyline{Points: h.BranchPoints(true, false), Style: curve},
			&mathfig.Polyline{Points: h.BranchPoints(true, true), Style: curve},
		)
	}
	if opts.Branch == BothBranches || opts.Branch == RightBranch {
		g.Add(
			&mathfig.Polyline{Points: h.BranchPoints(false, false), Style: curve},
			&mathfig.Polyline{Points: h.BranchPoints(false, true), Style: curve},
		)
	}

	if opts.ShowFoci {
		f1, f2 := h.Foci()
		g.Add(
			&mathfig.Dot{Center: f1, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}},
			&mathfig.Dot{Center: f2, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}},
		)
	}

	if opts.ShowVertices {
		v1, v2 := h.Vertices()
		g.Add(
			&mathfig.Dot{Center: v1, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Curve}},
			&mathfig.Dot{Center: v2, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Curve}},
		)
	}

	if opts.ShowAsymptotes {
		g.Add(h.asymptotes(t))
		if opts.AsymptoteLabels {
			g.Add(h.asymptoteLabels(t))
		}
	}

	if opts.ShowDirectrices {
		g.Add(h.directrices(t))
		if opts.DirectrixLabels {
			g.Add(h.directrixLabels(t))
		}
	}

	return g
}

// asymptotes draws four dashed rays from the origin along ±(a, b)/c,
// long enough to clear the drawn branches.
func (h *Hyperbola) asymptotes(t *mathfig.Theme) *mathfig.Group {
	length := math.Max(h.A, h.B) * 2.5
	dir := mathfig.V(h.A/h.C, h.B/h.C, 0)
	mirror := mathfig.V(h.A/h.C, -h.B/h.C, 0)
	style := mathfig.Style{
		Color: t.Accent,
		Width: t.StrokeWidth * 0.6,
		Dash:  t.Dash(),
	}

	g := mathfig.NewGroup()
	for _, d := range []mathfig.Vec3{dir, mirror, dir.Neg(), mirror.Neg()} {
		g.Add(&mathfig.Line{End: d.Mul(length), Style: style})
	}
	return g
}

func (h *Hyperbola) asymptoteLabels(t *mathfig.Theme) *mathfig.Group {
	length := math.Max(h.A, h.B) * 2.0
	end := mathfig.V(h.A/h.C, h.B/h.C, 0).Mul(length * 1.1)
	mirror := mathfig.V(h.A/h.C, -h.B/h.C, 0).Mul(length * 1.1)

	return mathfig.NewGroup(
		&mathfig.Label{
			Text: "y = (b/a)x", Size: t.FontSize * 0.8, Color: t.Accent,
			At: end.Add(mathfig.V(0.3, 0.3, 0)),
		},
		&mathfig.Label{
			Text: "y = -(b/a)x", Size: t.FontSize * 0.8, Color: t.Accent,
			At: mirror.Add(mathfig.V(0.3, -0.3, 0)),
		},
	)
}

// directrices draws the two vertical dashed lines x = ±a²/c.
func (h *Hyperbola) directrices(t *mathfig.Theme) *mathfig.Group {
	x := h.DirectrixX()
	half := h.B * 2
	style := t.Helper()
	style.Dash = mathfig.NewDash(0.12, t.DashRatio)
	return mathfig.NewGroup(
		&mathfig.Line{Start: mathfig.V(-x, half, 0), End: mathfig.V(-x, -half, 0), Style: style},
		&mathfig.Line{Start: mathfig.V(x, half, 0), End: mathfig.V(x, -half, 0), Style: style},
	)
}

func (h *Hyperbola) directrixLabels(t *mathfig.Theme) *mathfig.Group {
	x := h.DirectrixX()
	return mathfig.NewGroup(
		&mathfig.Label{
			Text: "x = -a²/c", Size: t.FontSize * 0.75, Color: t.Muted,
			At: mathfig.V(-(x + 0.5), h.B*1.5, 0),
		},
		&mathfig.Label{
			Text: "x = +a²/c", Size: t.FontSize * 0.75, Color: t.Muted,
			At: mathfig.V(x+0.5, h.B*1.5, 0),
		},
	)
}
