package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestNewCircle(t *testing.T) {
	_, err := NewCircle(0, mathfig.Vec3{})
	assert.Error(t, err)
	_, err = NewCircle(-2, mathfig.Vec3{})
	assert.Error(t, err)

	c, err := NewCircle(1.5, mathfig.V(2, -1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.5, c.Radius)
}

func TestCircle_RadiusLineEnd(t *testing.T) {
	c, err := NewCircle(2, mathfig.V(1, 1, 0))
	require.NoError(t, err)

	end := c.RadiusLineEnd()
	assert.InDelta(t, c.Radius, end.Distance(c.Center), 1e-12)

	want := math.Sqrt2 // 2·cos45°
	assert.InDelta(t, 1+want, end.X, 1e-12)
	assert.InDelta(t, 1+want, end.Y, 1e-12)
}

func TestCircle_Build(t *testing.T) {
	c, err := NewCircle(2, mathfig.V(1, -0.5, 0))
	require.NoError(t, err)

	g := c.Build(nil, DefaultCircleOptions())

	var arc *mathfig.Arc
	var labels []string
	var dashedLines int
	g.Walk(func(n mathfig.Node) {
		switch v := n.(type) {
		case *mathfig.Arc:
			arc = v
		case *mathfig.Label:
			labels = append(labels, v.Text)
		case *mathfig.Line:
			if v.Style.IsDashed() {
				dashedLines++
			}
		}
	})

	require.NotNil(t, arc)
	assert.Equal(t, c.Radius, arc.RX)
	assert.Equal(t, c.Radius, arc.RY)
	assert.True(t, arc.Center.Approx(c.Center, 1e-12))

	assert.Equal(t, 1, dashedLines, "the radius marker line is dashed")
	assert.Contains(t, labels, "(1, -0.5)")
	assert.Contains(t, labels, "r=2")
}

func TestFmtNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2"},
		{-0.5, "-0.5"},
		{1.996, "2"},
		{3.14, "3.1"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fmtNum(tt.in), "fmtNum(%v)", tt.in)
	}
}
