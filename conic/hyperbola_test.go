package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestNewHyperbola(t *testing.T) {
	h, err := NewHyperbola(2, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, h.C, 1e-12)
	assert.Greater(t, h.C, h.A, "foci lie outside the vertices")
	assert.Equal(t, DefaultRenderExtent, h.RenderExtent)

	_, err = NewHyperbola(0, 1)
	assert.Error(t, err)
	_, err = NewHyperbola(2, -1)
	assert.Error(t, err)
}

func TestHyperbola_BranchPoints(t *testing.T) {
	h, err := NewHyperbola(2, 1.5)
	require.NoError(t, err)

	tests := []struct {
		name        string
		left, lower bool
	}{
		{"right upper", false, false},
		{"right lower", false, true},
		{"left upper", true, false},
		{"left lower", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := h.BranchPoints(tt.left, tt.lower)
			require.Len(t, pts, h.Samples)

			for _, p := range pts {
				assert.Less(t, h.OnBranch(p), 1e-9)
				if tt.left {
					assert.LessOrEqual(t, p.X, -h.A)
				} else {
					assert.GreaterOrEqual(t, p.X, h.A)
				}
				if tt.lower {
					assert.LessOrEqual(t, p.Y, 0.0)
				} else {
					assert.GreaterOrEqual(t, p.Y, 0.0)
				}
			}

			// Sampling starts at the vertex and stops at the render extent.
			first, last := pts[0], pts[len(pts)-1]
			assert.InDelta(t, h.A, math.Abs(first.X), 1e-12)
			assert.InDelta(t, h.A+h.RenderExtent, math.Abs(last.X), 1e-12)
		})
	}
}

func TestHyperbola_RenderExtent(t *testing.T) {
	h, err := NewHyperbola(1, 1)
	require.NoError(t, err)
	h.RenderExtent = 2

	pts := h.BranchPoints(false, false)
	last := pts[len(pts)-1]
	assert.InDelta(t, 3, last.X, 1e-12)
	assert.Less(t, h.OnBranch(last), 1e-9)
}

func TestHyperbola_FocalInvariant(t *testing.T) {
	h, err := NewHyperbola(2, 1.5)
	require.NoError(t, err)
	f1, f2 := h.Foci()

	// |d(P,F1) - d(P,F2)| = 2a on every sampled point.
	for _, p := range h.BranchPoints(false, false) {
		diff := math.Abs(p.Distance(f1) - p.Distance(f2))
		assert.InDelta(t, 2*h.A, diff, 1e-9)
	}
}

func TestHyperbola_AsymptoteSlope(t *testing.T) {
	h, err := NewHyperbola(2, 1.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, h.AsymptoteSlope(), 1e-12)

	// Branch points approach the asymptote from below.
	pts := h.BranchPoints(false, false)
	last := pts[len(pts)-1]
	assert.Less(t, last.Y, h.AsymptoteSlope()*last.X)
	assert.InDelta(t, h.AsymptoteSlope()*last.X, last.Y, 0.3)
}

func TestHyperbola_Build(t *testing.T) {
	h, err := NewHyperbola(2, 1.5)
	require.NoError(t, err)

	t.Run("both branches", func(t *testing.T) {
		g := h.Build(nil, DefaultHyperbolaOptions())
		var polylines, dashed int
		g.Walk(func(n mathfig.Node) {
			switch v := n.(type) {
			case *mathfig.Polyline:
				polylines++
			case *mathfig.Line:
				if v.Style.IsDashed() {
					dashed++
				}
			}
		})
		assert.Equal(t, 4, polylines, "two half-branches per branch")
		assert.Equal(t, 4, dashed, "four asymptote rays")
	})

	t.Run("single branch", func(t *testing.T) {
		opts := DefaultHyperbolaOptions()
		opts.Branch = RightBranch
		opts.ShowAsymptotes = false
		g := h.Build(nil, opts)
		var polylines int
		g.Walk(func(n mathfig.Node) {
			if _, ok := n.(*mathfig.Polyline); ok {
				polylines++
			}
		})
		assert.Equal(t, 2, polylines)
	})
}
