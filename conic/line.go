package conic

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// EquationKind identifies one of the five textbook forms of a line
// equation.
type EquationKind int

const (
	GeneralForm        EquationKind = iota // Ax + By + C = 0
	SlopeInterceptForm                     // y = kx + b
	PointSlopeForm                         // y - y₁ = k(x - x₁)
	TwoPointForm                           // (y-y₁)/(y₂-y₁) = (x-x₁)/(x₂-x₁)
	InterceptForm                          // x/a + y/b = 1
)

// String returns the display name of the form.
func (k EquationKind) String() string {
	switch k {
	case GeneralForm:
		return "General"
	case SlopeInterceptForm:
		return "Slope-Intercept"
	case PointSlopeForm:
		return "Point-Slope"
	case TwoPointForm:
		return "Two-Point"
	case InterceptForm:
		return "Intercept"
	}
	return fmt.Sprintf("EquationKind(%d)", int(k))
}

// Equation is one rendered equation form of a line.
type Equation struct {
	Kind EquationKind
	Text string
}

// maxSlope is the slope magnitude above which slope-based equation forms
// are suppressed as numerically meaningless.
const maxSlope = 100

// maxIntercept bounds the intercept magnitude for markers and the
// intercept equation form; beyond it the intercept is off any
// reasonable frame.
const maxIntercept = 20

// Line is the straight line through two points, with every derived
// quantity of the five textbook equation forms computed up front.
type Line struct {
	P1, P2 mathfig.Vec3

	// Slope and YIntercept describe y = kx + b; meaningless when
	// Vertical is set.
	Slope      float64
	YIntercept float64

	// A, B, C are the general-form coefficients Ax + By + C = 0.
	A, B, C float64

	Vertical      bool
	Horizontal    bool
	ThroughOrigin bool
}

// NewLine creates the line through p1 and p2 (Z is ignored).
// Near-coincident points degenerate to a horizontal line through p1
// pointing right; this is logged rather than reported as an error so
// that animated inputs collapsing to a point keep producing a figure.
func NewLine(p1, p2 mathfig.Vec3) *Line {
	p1.Z, p2.Z = 0, 0
	delta := p2.Sub(p1)

	if delta.Length() < mathfig.Epsilon {
		mathfig.Logger().Warn("line points nearly coincide, defaulting to rightward direction",
			"p1", p1, "p2", p2)
		p2 = p1.Add(mathfig.Right)
		delta = mathfig.Right
	}

	l := &Line{
		P1: p1, P2: p2,
		Vertical:      math.Abs(delta.X) < mathfig.Epsilon,
		Horizontal:    math.Abs(delta.Y) < mathfig.Epsilon,
		ThroughOrigin: p1.Length() < mathfig.Epsilon,
	}

	if !l.Vertical {
		l.Slope = delta.Y / delta.X
		l.YIntercept = p1.Y - l.Slope*p1.X
	}

	switch {
	case l.Vertical:
		l.A, l.B, l.C = 1, 0, -p1.X
	case l.Horizontal:
		l.A, l.B, l.C = 0, 1, -p1.Y
	default:
		// y = kx + b rearranged to kx - y + b = 0.
		l.A, l.B, l.C = l.Slope, -1, l.YIntercept
	}

	return l
}

// XIntercept returns where the line crosses the x axis, if it does.
func (l *Line) XIntercept() (float64, bool) {
	if math.Abs(l.A) < mathfig.Epsilon {
		return 0, false
	}
	return -l.C / l.A, true
}

// YInterceptPoint returns where the line crosses the y axis, if it does.
func (l *Line) YInterceptPoint() (float64, bool) {
	if math.Abs(l.B) < mathfig.Epsilon {
		return 0, false
	}
	return -l.C / l.B, true
}

// Direction returns the unit direction from P1 to P2.
func (l *Line) Direction() mathfig.Vec3 {
	return l.P2.Sub(l.P1).Normalize()
}

// Equations returns every equation form whose preconditions hold, in
// the textbook order. The general form is always present.
func (l *Line) Equations() []Equation {
	eqs := []Equation{{GeneralForm, linearEquation(l.A, l.B, l.C)}}

	slopeOK := !l.Vertical && math.Abs(l.Slope) < maxSlope
	if slopeOK {
		eqs = append(eqs,
			Equation{SlopeInterceptForm, l.slopeInterceptText()},
			Equation{PointSlopeForm, l.pointSlopeText()},
		)
	}

	if !l.Vertical && !l.Horizontal {
		eqs = append(eqs, Equation{TwoPointForm, l.twoPointText()})
	}

	if xi, ok := l.XIntercept(); ok {
		if yi, ok := l.YInterceptPoint(); ok {
			if math.Abs(xi) > 0.01 && math.Abs(yi) > 0.01 &&
				math.Abs(xi) < maxIntercept && math.Abs(yi) < maxIntercept {
				eqs = append(eqs, Equation{
					InterceptForm,
					fmt.Sprintf("x/%s + y/%s = 1", fmtCoeff(xi), fmtCoeff(yi)),
				})
			}
		}
	}

	return eqs
}

func (l *Line) slopeInterceptText() string {
	s := "y = "
	if math.Abs(l.Slope) >= 0.01 {
		switch {
		case math.Abs(l.Slope-1) < 0.01:
			s += "x"
		case math.Abs(l.Slope+1) < 0.01:
			s += "-x"
		default:
			s += fmtCoeff(l.Slope) + "x"
		}
		if l.YIntercept >= 0.01 {
			s += " + " + fmtCoeff(l.YIntercept)
		} else if l.YIntercept <= -0.01 {
			s += " - " + fmtCoeff(-l.YIntercept)
		}
		return s
	}
	return s + fmtCoeff(l.YIntercept)
}

func (l *Line) pointSlopeText() string {
	return fmt.Sprintf("y - %s = %s(x - %s)",
		fmtNum(l.P1.Y), fmtCoeff(l.Slope), fmtNum(l.P1.X))
}

func (l *Line) twoPointText() string {
	return fmt.Sprintf("(y - %s)/(%s - %s) = (x - %s)/(%s - %s)",
		fmtNum(l.P1.Y), fmtNum(l.P2.Y), fmtNum(l.P1.Y),
		fmtNum(l.P1.X), fmtNum(l.P2.X), fmtNum(l.P1.X))
}

// LineOptions selects which annotations Build draws.
type LineOptions struct {
	// Length caps the drawn segment length; the segment is centered on
	// the midpoint of the defining points. Zero selects 10.
	Length         float64
	ShowEquations  bool
	ShowIntercepts bool
}

// DefaultLineOptions shows the equation panel and intercept markers.
func DefaultLineOptions() LineOptions {
	return LineOptions{Length: 10, ShowEquations: true, ShowIntercepts: true}
}

// Build assembles the line figure. A nil theme selects the default.
func (l *Line) Build(theme *mathfig.Theme, opts LineOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	length := opts.Length
	if length <= 0 {
		length = 10
	}
	span := l.P2.Sub(l.P1).Length()
	if span < length {
		length = span
	}

	center := l.P1.Midpoint(l.P2)
	half := l.Direction().Mul(length / 2)
	g.Add(&mathfig.Line{Start: center.Sub(half), End: center.Add(half), Style: t.Solid()})

	g.Add(
		&mathfig.Dot{Center: l.P1, Radius: 0.06, Style: mathfig.Style{Color: t.Curve}},
		&mathfig.Dot{Center: l.P2, Radius: 0.06, Style: mathfig.Style{Color: t.Curve}},
	)

	if opts.ShowIntercepts {
		g.Add(l.interceptMarkers(t))
	}
	if opts.ShowEquations {
		g.Add(l.equationPanel(t))
	}

	return g
}

// interceptMarkers draws accent dots with coordinate labels where the
// line crosses each axis, skipping intercepts far outside the frame.
func (l *Line) interceptMarkers(t *mathfig.Theme) *mathfig.Group {
	g := mathfig.NewGroup()

	if xi, ok := l.XIntercept(); ok && math.Abs(xi) < maxIntercept {
		at := mathfig.V(xi, 0, 0)
		g.Add(
			&mathfig.Dot{Center: at, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}},
			&mathfig.Label{
				Text: fmt.Sprintf("(%s, 0)", fmtNum(xi)),
				At:   at.Add(mathfig.V(0.25, -0.25, 0)),
				Size: t.FontSize * 0.65, Color: t.Accent,
			},
		)
	}

	if yi, ok := l.YInterceptPoint(); ok && math.Abs(yi) < maxIntercept {
		at := mathfig.V(0, yi, 0)
		g.Add(
			&mathfig.Dot{Center: at, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}},
			&mathfig.Label{
				Text: fmt.Sprintf("(0, %s)", fmtNum(yi)),
				At:   at.Add(mathfig.V(0.25, 0.25, 0)),
				Size: t.FontSize * 0.65, Color: t.Accent,
			},
		)
	}

	return g
}

// equationPanel stacks the applicable equation forms in the top-left
// corner of the frame.
func (l *Line) equationPanel(t *mathfig.Theme) *mathfig.Group {
	g := mathfig.NewGroup()
	at := mathfig.V(-4, 3.5, 0)
	const lineHeight = 0.5

	for _, eq := range l.Equations() {
		g.Add(&mathfig.Label{
			Text:  eq.Kind.String() + ": " + eq.Text,
			At:    at,
			Size:  t.FontSize * 0.8,
			Color: t.Curve,
		})
		at = at.Add(mathfig.Down.Mul(lineHeight))
	}
	return g
}
