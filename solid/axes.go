package solid

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/mathfig"
)

// DefaultXAxisAngle is where the oblique x axis leaves the figure,
// measured from the horizontal in the drawing plane.
const DefaultXAxisAngle = -135 * mathfig.Degree

// AxisSpec describes one coordinate axis of a solid in the drawing
// plane: its letter, unit direction, the distance from the anchor to
// where it exits the solid's surface, and its color.
type AxisSpec struct {
	Name    string
	Dir     mathfig.Vec3
	Surface float64
	Color   gg.RGBA
}

// BuildAxes draws coordinate axes through an anchor point. Each axis is
// a dashed segment from the anchor to the solid's surface, an arrow
// continuing past it, and the axis letter at the tip.
func BuildAxes(theme *mathfig.Theme, anchor mathfig.Vec3, specs []AxisSpec) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	for _, s := range specs {
		exit := anchor.Add(s.Dir.Mul(s.Surface))
		tip := exit.Add(s.Dir.Mul(t.ArrowLength))
		g.Add(
			&mathfig.Line{
				Start: anchor, End: exit,
				Style: mathfig.Style{Color: s.Color, Width: t.StrokeWidth * 0.5, Dash: t.Dash()},
			},
			&mathfig.Arrow{
				Start: exit, End: tip, TipLength: 0.18,
				Style: mathfig.Style{Color: s.Color, Width: t.StrokeWidth * 0.5},
			},
			&mathfig.Label{
				Text: s.Name,
				At:   tip.Add(s.Dir.Mul(0.3)),
				Size: t.FontSize * 0.8, Color: s.Color,
			},
		)
	}
	return g
}

// ObliqueAxes draws the standard x/y/z axes of an oblique figure: y to
// the right, z up, x receding at xAngle. The surface distances say how
// far each axis runs inside the solid before its arrow begins.
func ObliqueAxes(theme *mathfig.Theme, anchor mathfig.Vec3, xAngle float64, sx, sy, sz float64) *mathfig.Group {
	t := theme.OrDefault()
	xdir := mathfig.V(math.Cos(xAngle), math.Sin(xAngle), 0)
	return BuildAxes(t, anchor, []AxisSpec{
		{Name: "x", Dir: xdir, Surface: sx, Color: t.XAxis},
		{Name: "y", Dir: mathfig.Right, Surface: sy, Color: t.YAxis},
		{Name: "z", Dir: mathfig.Up, Surface: sz, Color: t.ZAxis},
	})
}
