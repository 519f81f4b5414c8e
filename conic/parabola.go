package conic

import (
	"fmt"
	"strings"

	"github.com/gogpu/mathfig"
)

// Direction is the opening direction of a standard parabola.
type Direction int

const (
	OpenRight Direction = iota // y² = 2px
	OpenLeft                   // y² = -2px
	OpenUp                     // x² = 2py
	OpenDown                   // x² = -2py
)

// String returns the canonical upper-case name of the direction.
func (d Direction) String() string {
	switch d {
	case OpenRight:
		return "RIGHT"
	case OpenLeft:
		return "LEFT"
	case OpenUp:
		return "UP"
	case OpenDown:
		return "DOWN"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a direction name (case-insensitive) into a
// Direction. Unrecognized names are an error.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(s) {
	case "RIGHT":
		return OpenRight, nil
	case "LEFT":
		return OpenLeft, nil
	case "UP":
		return OpenUp, nil
	case "DOWN":
		return OpenDown, nil
	}
	return 0, fmt.Errorf("conic: invalid parabola direction %q, must be RIGHT, LEFT, UP or DOWN", s)
}

// Parabola is a standard parabola with vertex at the origin and focal
// parameter p (the distance from directrix to focus).
type Parabola struct {
	P   float64
	Dir Direction
	// XRange and YRange bound the sampled curve. The range perpendicular
	// to the axis of symmetry is the one that matters for each direction.
	XRange, YRange [2]float64
	// Samples is the number of points on the sampled curve.
	Samples int
}

// NewParabola creates a standard parabola. The focal parameter must be
// positive and the direction one of the four cardinal values.
func NewParabola(p float64, dir Direction) (*Parabola, error) {
	if p <= 0 {
		return nil, fmt.Errorf("conic: parabola focal parameter must be positive, got p=%v", p)
	}
	switch dir {
	case OpenRight, OpenLeft, OpenUp, OpenDown:
	default:
		return nil, fmt.Errorf("conic: invalid parabola direction %v", int(dir))
	}
	return &Parabola{
		P: p, Dir: dir,
		XRange:  [2]float64{-3, 3},
		YRange:  [2]float64{-3, 3},
		Samples: 100,
	}, nil
}

// Focus returns the focus, at distance p/2 from the vertex along the
// opening direction.
func (pb *Parabola) Focus() mathfig.Vec3 {
	return pb.axis().Mul(pb.P / 2)
}

// DirectrixPoint returns the foot of the directrix, at distance p/2 from
// the vertex opposite the opening direction, and whether the directrix
// runs horizontally.
func (pb *Parabola) DirectrixPoint() (at mathfig.Vec3, horizontal bool) {
	return pb.axis().Mul(-pb.P / 2), pb.Dir == OpenUp || pb.Dir == OpenDown
}

// DirectrixEquation returns the textbook equation of the directrix.
func (pb *Parabola) DirectrixEquation() string {
	switch pb.Dir {
	case OpenRight:
		return "x = -p/2"
	case OpenLeft:
		return "x = +p/2"
	case OpenUp:
		return "y = -p/2"
	default:
		return "y = +p/2"
	}
}

// axis returns the unit vector of the opening direction.
func (pb *Parabola) axis() mathfig.Vec3 {
	switch pb.Dir {
	case OpenRight:
		return mathfig.Right
	case OpenLeft:
		return mathfig.Left
	case OpenUp:
		return mathfig.Up
	default:
		return mathfig.Down
	}
}

// CurvePoints samples the parabola across the range perpendicular to its
// axis of symmetry.
func (pb *Parabola) CurvePoints() []mathfig.Vec3 {
	n := pb.Samples
	if n < 2 {
		n = 2
	}
	pts := make([]mathfig.Vec3, 0, n)

	horizontal := pb.Dir == OpenRight || pb.Dir == OpenLeft
	r := pb.YRange
	if !horizontal {
		r = pb.XRange
	}
	step := (r[1] - r[0]) / float64(n-1)

	for i := 0; i < n; i++ {
		u := r[0] + float64(i)*step
		v := u * u / (2 * pb.P)
		switch pb.Dir {
		case OpenRight:
			pts = append(pts, mathfig.V(v, u, 0))
		case OpenLeft:
			pts = append(pts, mathfig.V(-v, u, 0))
		case OpenUp:
			pts = append(pts, mathfig.V(u, v, 0))
		default:
			pts = append(pts, mathfig.V(u, -v, 0))
		}
	}
	return pts
}

// ParabolaOptions selects which properties Build draws.
type ParabolaOptions struct {
	ShowVertex     bool
	ShowFocus      bool
	ShowDirectrix  bool
	DirectrixLabel bool
	// DirectrixLength is the drawn length of the directrix line.
	// Zero selects the traditional length of 6.
	DirectrixLength float64
}

// DefaultParabolaOptions shows vertex, focus and directrix.
func DefaultParabolaOptions() ParabolaOptions {
	return ParabolaOptions{ShowVertex: true, ShowFocus: true, ShowDirectrix: true}
}

// Build assembles the parabola figure. A nil theme selects the default.
// The directrix is drawn solid, following the textbook convention for
// parabolas (unlike the dashed ellipse/hyperbola directrices).
func (pb *Parabola) Build(theme *mathfig.Theme, opts ParabolaOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	g.Add(&mathfig.Polyline{Points: pb.CurvePoints(), Style: t.Solid()})

	if opts.ShowFocus {
		g.Add(&mathfig.Dot{Center: pb.Focus(), Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}})
	}
	if opts.ShowVertex {
		g.Add(&mathfig.Dot{Radius: t.PointRadius * 0.8, Style: mathfig.Style{Color: t.Curve}})
	}

	if opts.ShowDirectrix {
		length := opts.DirectrixLength
		if length <= 0 {
			length = 6
		}
		at, horizontal := pb.DirectrixPoint()
		style := mathfig.Style{Color: t.Accent, Width: t.StrokeWidth * 0.8}

		span := mathfig.Up.Mul(length / 2)
		if horizontal {
			span = mathfig.Right.Mul(length / 2)
		}
		g.Add(&mathfig.Line{Start: at.Sub(span), End: at.Add(span), Style: style})

		if opts.DirectrixLabel {
			g.Add(pb.directrixLabel(t, at))
		}
	}

	return g
}

func (pb *Parabola) directrixLabel(t *mathfig.Theme, at mathfig.Vec3) *mathfig.Label {
	offset := mathfig.V(0.3, 0.5, 0)
	switch pb.Dir {
	case OpenRight:
		offset = mathfig.V(-0.3, 0.5, 0)
	case OpenUp:
		offset = mathfig.V(-0.5, -0.3, 0)
	case OpenDown:
		offset = mathfig.V(-0.5, 0.3, 0)
	}
	return &mathfig.Label{
		Text:  pb.DirectrixEquation(),
		At:    at.Add(offset),
		Size:  t.FontSize * 0.8,
		Color: t.Accent,
	}
}
