package conic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/mathfig"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"RIGHT", OpenRight, false},
		{"left", OpenLeft, false},
		{"Up", OpenUp, false},
		{"DOWN", OpenDown, false},
		{"sideways", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewParabola(t *testing.T) {
	_, err := NewParabola(0, OpenRight)
	assert.Error(t, err)
	_, err = NewParabola(-1, OpenUp)
	assert.Error(t, err)
	_, err = NewParabola(2, Direction(99))
	assert.Error(t, err)

	pb, err := NewParabola(2, OpenRight)
	require.NoError(t, err)
	assert.Equal(t, 100, pb.Samples)
}

func TestParabola_FocusDirectrix(t *testing.T) {
	tests := []struct {
		dir       Direction
		wantFocus mathfig.Vec3
		wantFoot  mathfig.Vec3
		horiz     bool
	}{
		{OpenRight, mathfig.V(1, 0, 0), mathfig.V(-1, 0, 0), false},
		{OpenLeft, mathfig.V(-1, 0, 0), mathfig.V(1, 0, 0), false},
		{OpenUp, mathfig.V(0, 1, 0), mathfig.V(0, -1, 0), true},
		{OpenDown, mathfig.V(0, -1, 0), mathfig.V(0, 1, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			pb, err := NewParabola(2, tt.dir)
			require.NoError(t, err)

			focus := pb.Focus()
			assert.True(t, focus.Approx(tt.wantFocus, 1e-12), "focus=%v", focus)

			foot, horiz := pb.DirectrixPoint()
			assert.True(t, foot.Approx(tt.wantFoot, 1e-12), "foot=%v", foot)
			assert.Equal(t, tt.horiz, horiz)

			// Focus and directrix foot sit on opposite sides of the vertex.
			assert.True(t, focus.Approx(foot.Neg(), 1e-12))
			assert.InDelta(t, pb.P/2, focus.Length(), 1e-12)
		})
	}
}

func TestParabola_CurvePoints(t *testing.T) {
	for _, dir := range []Direction{OpenRight, OpenLeft, OpenUp, OpenDown} {
		t.Run(dir.String(), func(t *testing.T) {
			pb, err := NewParabola(1.5, dir)
			require.NoError(t, err)

			pts := pb.CurvePoints()
			require.Len(t, pts, pb.Samples)

			focus := pb.Focus()
			foot, horiz := pb.DirectrixPoint()
			for _, p := range pts {
				// Defining property: distance to focus equals distance to
				// the directrix line.
				toDirectrix := math.Abs(p.X - foot.X)
				if horiz {
					toDirectrix = math.Abs(p.Y - foot.Y)
				}
				assert.InDelta(t, toDirectrix, p.Distance(focus), 1e-9)
			}
		})
	}
}

func TestParabola_Build(t *testing.T) {
	pb, err := NewParabola(2, OpenRight)
	require.NoError(t, err)

	g := pb.Build(nil, DefaultParabolaOptions())
	var curves, dots, solidLines int
	g.Walk(func(n mathfig.Node) {
		switch v := n.(type) {
		case *mathfig.Polyline:
			curves++
		case *mathfig.Dot:
			dots++
		case *mathfig.Line:
			if !v.Style.IsDashed() {
				solidLines++
			}
		}
	})
	assert.Equal(t, 1, curves)
	assert.Equal(t, 2, dots, "vertex and focus")
	assert.Equal(t, 1, solidLines, "the directrix is drawn solid")
}
