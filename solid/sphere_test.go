package solid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestSphere_AxisEllipseIntersection(t *testing.T) {
	s, err := NewSphere(2)
	require.NoError(t, err)
	s.Skew = 0.3
	s.XAxisAngle = -135 * mathfig.Degree

	hit := s.AxisEllipseIntersection()

	// At -135° the slope is 1 and the crossing sits in the lower left.
	assert.InDelta(t, -0.574696, hit.X, 1e-5)
	assert.InDelta(t, hit.X, hit.Y, 1e-12)

	// The crossing lies exactly on the equator ellipse.
	a, b := s.Radius, s.Radius*s.Skew
	assert.InDelta(t, 1, hit.X*hit.X/(a*a)+hit.Y*hit.Y/(b*b), 1e-6)

	// And on the axis ray itself.
	dir := mathfig.V(math.Cos(s.XAxisAngle), math.Sin(s.XAxisAngle), 0)
	assert.InDelta(t, 0, dir.Cross(hit).Length(), 1e-9)
	assert.Positive(t, dir.Dot(hit), "the crossing follows the axis direction")
}

func TestSphere_AxisEllipseIntersection_Branches(t *testing.T) {
	s, err := NewSphere(2)
	require.NoError(t, err)

	t.Run("down-right axis", func(t *testing.T) {
		s.XAxisAngle = -45 * mathfig.Degree
		hit := s.AxisEllipseIntersection()
		assert.Positive(t, hit.X)
		assert.Negative(t, hit.Y)
	})

	t.Run("vertical axis", func(t *testing.T) {
		s.XAxisAngle = -90 * mathfig.Degree
		hit := s.AxisEllipseIntersection()
		assert.Zero(t, hit.X)
		assert.InDelta(t, -s.Radius*s.Skew, hit.Y, 1e-12)
	})
}

func TestSphere_Build(t *testing.T) {
	s, err := NewSphere(2)
	require.NoError(t, err)

	g := s.Build(nil, DefaultSphereOptions())

	var fullArcs, halfArcs, arrows, labels int
	g.Walk(func(n mathfig.Node) {
		switch v := n.(type) {
		case *mathfig.Arc:
			if v.Sweep > math.Pi*1.5 {
				fullArcs++
			} else {
				halfArcs++
			}
		case *mathfig.Arrow:
			arrows++
		case *mathfig.Label:
			labels++
		}
	})
	assert.Equal(t, 1, fullArcs, "the contour circle")
	assert.Equal(t, 4, halfArcs, "equator and meridian halves")
	assert.Equal(t, 3, arrows, "one arrow per axis")
	assert.Equal(t, 5, labels, "x, y, z, O and N")
}

func TestRimArcs_Split(t *testing.T) {
	theme := mathfig.DefaultTheme()

	near, far := rimArcs(theme, mathfig.Vec3{}, 2, 1, false)
	assert.Equal(t, math.Pi, near.Start, "seen from above the near half is the lower arc")
	assert.Zero(t, far.Start)
	assert.False(t, near.Style.IsDashed())
	assert.True(t, far.Style.IsDashed())

	near, far = rimArcs(theme, mathfig.Vec3{}, 2, 1, true)
	assert.Equal(t, 2*math.Pi, near.Start, "seen from below the halves swap")
	assert.Equal(t, math.Pi, far.Start)
}
