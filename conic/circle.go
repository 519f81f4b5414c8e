package conic

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// Circle is the circle (x−h)² + (y−k)² = r² with center (h, k).
type Circle struct {
	Radius float64
	Center mathfig.Vec3
}

// NewCircle creates a circle with the given radius and absolute center.
func NewCircle(radius float64, center mathfig.Vec3) (*Circle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("conic: circle radius must be positive, got %v", radius)
	}
	return &Circle{Radius: radius, Center: center}, nil
}

// RadiusLineEnd returns the end of the 45° radius marker line.
func (c *Circle) RadiusLineEnd() mathfig.Vec3 {
	dir := mathfig.V(math.Cos(45*mathfig.Degree), math.Sin(45*mathfig.Degree), 0)
	return c.Center.Add(dir.Mul(c.Radius))
}

// CircleOptions selects which annotations Build draws.
type CircleOptions struct {
	ShowCenterDot    bool
	ShowCenterCoords bool
	ShowRadiusLine   bool
	ShowRadiusValue  bool
}

// DefaultCircleOptions shows everything.
func DefaultCircleOptions() CircleOptions {
	return CircleOptions{
		ShowCenterDot:    true,
		ShowCenterCoords: true,
		ShowRadiusLine:   true,
		ShowRadiusValue:  true,
	}
}

// Build assembles the circle figure. A nil theme selects the default.
func (c *Circle) Build(theme *mathfig.Theme, opts CircleOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	g.Add(&mathfig.Arc{
		Center: c.Center,
		RX:     c.Radius, RY: c.Radius,
		Sweep: 2 * math.Pi,
		Style: t.Solid(),
	})

	if opts.ShowCenterDot {
		g.Add(&mathfig.Dot{Center: c.Center, Radius: t.PointRadius, Style: mathfig.Style{Color: t.Accent}})

		if opts.ShowCenterCoords {
			g.Add(&mathfig.Label{
				Text:  fmt.Sprintf("(%s, %s)", fmtNum(c.Center.X), fmtNum(c.Center.Y)),
				At:    c.Center.Add(mathfig.V(0.15, 0.15, 0)),
				Size:  t.FontSize * 0.8,
				Color: t.Accent,
			})
		}
	}

	if opts.ShowRadiusLine {
		end := c.RadiusLineEnd()
		g.Add(&mathfig.Line{
			Start: c.Center,
			End:   end,
			Style: mathfig.Style{
				Color: t.Curve,
				Width: t.StrokeWidth * 0.6,
				Dash:  t.Dash(),
			},
		})

		if opts.ShowRadiusValue {
			mid := c.Center.Midpoint(end)
			g.Add(&mathfig.Label{
				Text:  "r=" + fmtNum(c.Radius),
				At:    mid.Add(mathfig.V(0.2, 0.3, 0)),
				Size:  t.FontSize * 0.8,
				Color: t.Curve,
			})
		}
	}

	return g
}
