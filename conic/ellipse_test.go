package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestNewEllipse(t *testing.T) {
	tests := []struct {
		name    string
		a, b    float64
		wantC   float64
		wantErr bool
	}{
		{"classic 3-2", 3, 2, math.Sqrt(5), false},
		{"circle a=b", 2, 2, 0, false},
		{"a less than b", 2, 3, 0, true},
		{"zero a", 0, 1, 0, true},
		{"negative b", 3, -1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEllipse(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantC, e.C, 1e-12)
		})
	}
}

func TestEllipse_FocalInvariants(t *testing.T) {
	e, err := NewEllipse(3, 2)
	require.NoError(t, err)

	f1, f2 := e.Foci()
	assert.True(t, f1.Approx(f2.Neg(), 1e-12), "foci must be symmetric about the origin")
	assert.Less(t, e.C, e.A, "focal distance must lie inside the major axis")

	// Sum of focal distances equals 2a for any point on the curve.
	for _, theta := range []float64{0, 0.7, math.Pi / 2, 2.1, math.Pi} {
		p := mathfig.V(e.A*math.Cos(theta), e.B*math.Sin(theta), 0)
		sum := p.Distance(f1) + p.Distance(f2)
		assert.InDelta(t, 2*e.A, sum, 1e-9, "theta=%v", theta)
	}
}

func TestEllipse_Eccentricity(t *testing.T) {
	e, err := NewEllipse(5, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, e.Eccentricity(), 1e-12)

	circle, err := NewEllipse(2, 2)
	require.NoError(t, err)
	assert.Zero(t, circle.Eccentricity())
}

func TestEllipse_DirectrixX(t *testing.T) {
	e, err := NewEllipse(5, 3)
	require.NoError(t, err)
	x, ok := e.DirectrixX()
	require.True(t, ok)
	assert.InDelta(t, 25.0/4.0, x, 1e-12)

	// Directrix distance relates to eccentricity: x = a/e.
	assert.InDelta(t, e.A/e.Eccentricity(), x, 1e-12)

	circle, err := NewEllipse(2, 2)
	require.NoError(t, err)
	_, ok = circle.DirectrixX()
	assert.False(t, ok, "a circle has no directrix")
}

func TestEllipse_Build(t *testing.T) {
	e, err := NewEllipse(3, 2)
	require.NoError(t, err)

	g := e.Build(nil, DefaultEllipseOptions())
	var arcs, dots int
	g.Walk(func(n mathfig.Node) {
		switch n.(type) {
		case *mathfig.Arc:
			arcs++
		case *mathfig.Dot:
			dots++
		}
	})
	assert.Equal(t, 1, arcs)
	assert.Equal(t, 6, dots, "two foci and four vertices")
}
