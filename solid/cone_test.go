package solid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestCone_TangentOffsets(t *testing.T) {
	cone, err := NewCone(2, 3.5)
	require.NoError(t, err)
	cone.Skew = 0.4

	x, y := cone.TangentOffsets()
	assert.InDelta(t, 0.1828571, y, 1e-6, "y = b²/h with b = 0.8")
	assert.InDelta(t, 1.9470544, x, 1e-6)

	// The tangent point lies exactly on the rim ellipse.
	a, b := cone.Radius, cone.Radius*cone.Skew
	assert.InDelta(t, 1, x*x/(a*a)+y*y/(b*b), 1e-9)
}

func TestCone_TangentOffsets_LowApex(t *testing.T) {
	cone, err := NewCone(2, 0.5)
	require.NoError(t, err)
	cone.Skew = 0.4

	// Apex below the rim top: the slant edges fall back to the rim
	// endpoints instead of producing a NaN offset.
	x, y := cone.TangentOffsets()
	assert.Equal(t, cone.Radius, x)
	assert.Zero(t, y)
}

func TestCone_TangentLineIsTangent(t *testing.T) {
	cone, err := NewCone(3, 5)
	require.NoError(t, err)

	x0, y0 := cone.TangentOffsets()
	apex := cone.Apex()
	a, b := cone.Radius, cone.Radius*cone.Skew

	// Rim points on either side of the tangent point stay on the same
	// side of the slant line: the line touches without crossing.
	dir := mathfig.V(x0, y0, 0).Sub(apex).Normalize()
	for _, dt := range []float64{-0.05, -0.01, 0.01, 0.05} {
		theta := math.Atan2(y0/b, x0/a) + dt
		rim := mathfig.V(a*math.Cos(theta), b*math.Sin(theta), 0)
		toRim := rim.Sub(apex)
		cross := dir.X*toRim.Y - dir.Y*toRim.X
		assert.LessOrEqual(t, cross, 1e-9, "dt=%v", dt)
	}
}

func TestCone_Build(t *testing.T) {
	cone, err := NewCone(2, 3.5)
	require.NoError(t, err)

	g := cone.Build(nil, DefaultConeOptions())
	var arcs, lines, labels int
	g.Walk(func(n mathfig.Node) {
		switch n.(type) {
		case *mathfig.Arc:
			arcs++
		case *mathfig.Line:
			lines++
		case *mathfig.Label:
			labels++
		}
	})
	assert.Equal(t, 2, arcs, "near and far rim halves")
	assert.Equal(t, 2, lines, "two slant edges")
	assert.Equal(t, 2, labels, "O and S")
}

func TestNewCone_Validation(t *testing.T) {
	_, err := NewCone(0, 1)
	assert.Error(t, err)
	_, err = NewCone(2, -1)
	assert.Error(t, err)
}
