package solid

import (
	"fmt"

	"github.com/gogpu/mathfig"
)

// Frustum is a cone truncated parallel to its base.
type Frustum struct {
	BottomRadius, TopRadius, Height float64
	// Skew foreshortens the rim depth (default DefaultSkew).
	Skew   float64
	Center mathfig.Vec3 // bottom center in the drawing plane
}

// NewFrustum creates a frustum with the default rim skew. The top must
// be narrower than the bottom.
func NewFrustum(bottomRadius, topRadius, height float64) (*Frustum, error) {
	if bottomRadius <= 0 || topRadius <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: frustum radii and height must be positive, got %v/%v/%v",
			bottomRadius, topRadius, height)
	}
	if topRadius >= bottomRadius {
		return nil, fmt.Errorf("solid: frustum top radius (%v) must be smaller than the bottom radius (%v)",
			topRadius, bottomRadius)
	}
	return &Frustum{BottomRadius: bottomRadius, TopRadius: topRadius, Height: height, Skew: DefaultSkew}, nil
}

// TopCenter returns the center of the top face.
func (f *Frustum) TopCenter() mathfig.Vec3 {
	return f.Center.Add(mathfig.Up.Mul(f.Height))
}

// FrustumOptions selects the annotations.
type FrustumOptions struct {
	ViewFromBelow bool
	ShowLabels    bool // O at the bottom center, O1 at the top center
	ShowAxis      bool
}

// DefaultFrustumOptions shows the center labels.
func DefaultFrustumOptions() FrustumOptions {
	return FrustumOptions{ShowLabels: true}
}

// Build draws the frustum: the bottom rim split near/far, the full top
// ellipse, and the slant edges joining the rim endpoints. A nil theme
// selects the default.
func (f *Frustum) Build(theme *mathfig.Theme, opts FrustumOptions) *mathfig.Group {
	t := theme.OrDefault()
	g := mathfig.NewGroup()

	near, far := rimArcs(t, f.Center, f.BottomRadius, f.BottomRadius*f.Skew, opts.ViewFromBelow)
	g.Add(near, far)

	top := f.TopCenter()
	g.Add(fullEllipse(t, top, f.TopRadius, f.TopRadius*f.Skew))

	g.Add(
		&mathfig.Line{
			Start: f.Center.Add(mathfig.Left.Mul(f.BottomRadius)),
			End:   top.Add(mathfig.Left.Mul(f.TopRadius)),
			Style: t.Solid(),
		},
		&mathfig.Line{
			Start: f.Center.Add(mathfig.Right.Mul(f.BottomRadius)),
			End:   top.Add(mathfig.Right.Mul(f.TopRadius)),
			Style: t.Solid(),
		},
	)

	if opts.ShowAxis {
		g.Add(&mathfig.Line{Start: f.Center, End: top, Style: t.Helper()})
	}
	if opts.ShowLabels {
		g.Add(
			&mathfig.Dot{Center: f.Center, Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			centerLabel(t, "O", f.Center),
			&mathfig.Dot{Center: top, Radius: t.PointRadius * 0.7, Style: mathfig.Style{Color: t.Label}},
			apexLabel(t, "O1", top),
		)
	}

	return g
}
