package solid

import (
	"math"

	"github.com/gogpu/mathfig"
)

// Solids of revolution are drawn directly in the plane: the base circle
// becomes an ellipse with vertical semi-axis radius·skew, and each rim
// splits at the horizontal diameter. Seen from above the base plane the
// near half is the lower arc [π, 2π] and the far half the upper arc
// [0, π]; seen from below the halves swap.

// DefaultSkew is the foreshortening applied to the depth dimension of a
// revolution solid's rim.
const DefaultSkew = 0.5

// rimHiddenStart returns where the dashed half of a rim begins.
func rimHiddenStart(viewFromBelow bool) float64 {
	if viewFromBelow {
		return math.Pi
	}
	return 0
}

// rimArcs builds the two halves of a rim ellipse: the near half solid,
// the far half dashed at half density.
func rimArcs(t *mathfig.Theme, center mathfig.Vec3, rx, ry float64, viewFromBelow bool) (near, far *mathfig.Arc) {
	hiddenStart := rimHiddenStart(viewFromBelow)
	far = &mathfig.Arc{
		Center: center, RX: rx, RY: ry,
		Start: hiddenStart, Sweep: math.Pi,
		Style: mathfig.Style{
			Color: t.Curve,
			Width: t.StrokeWidth * 0.7,
			Dash:  mathfig.NewDash(t.DashLength, 0.5),
		},
	}
	near = &mathfig.Arc{
		Center: center, RX: rx, RY: ry,
		Start: hiddenStart + math.Pi, Sweep: math.Pi,
		Style: t.Solid(),
	}
	return near, far
}

// fullEllipse builds a complete rim ellipse, used for top faces that are
// entirely visible.
func fullEllipse(t *mathfig.Theme, center mathfig.Vec3, rx, ry float64) *mathfig.Arc {
	return &mathfig.Arc{
		Center: center, RX: rx, RY: ry,
		Sweep: 2 * math.Pi,
		Style: t.Solid(),
	}
}

// centerLabel places a letter below an anchor point, the convention for
// base-center labels.
func centerLabel(t *mathfig.Theme, text string, at mathfig.Vec3) *mathfig.Label {
	return &mathfig.Label{
		Text:  text,
		At:    at.Add(mathfig.Down.Mul(0.5)),
		Size:  t.FontSize * 0.75,
		Color: t.Label,
	}
}

// apexLabel places a letter above an anchor point.
func apexLabel(t *mathfig.Theme, text string, at mathfig.Vec3) *mathfig.Label {
	return &mathfig.Label{
		Text:  text,
		At:    at.Add(mathfig.Up.Mul(0.3)),
		Size:  t.FontSize * 0.75,
		Color: t.Label,
	}
}
