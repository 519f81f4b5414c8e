package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mathfig.ini")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	f := Default()

	assert.Equal(t, "#FFFFFF", f.Style.Curve)
	assert.Equal(t, 4.0, f.Style.StrokeWidth)
	assert.Equal(t, 0.5, f.Solid.Skew)
	assert.Equal(t, -135.0, f.Solid.XAxisAngle)
	assert.Equal(t, 4.0, f.Conic.HyperbolaExtent)
	assert.Equal(t, 80, f.Conic.HyperbolaSamples)
	assert.Equal(t, 1024, f.Render.Width)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `[Style]
Curve = "#00FF00"
StrokeWidth = 6

[Conic]
HyperbolaExtent = 2.5
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#00FF00", f.Style.Curve)
	assert.Equal(t, 6.0, f.Style.StrokeWidth)
	assert.Equal(t, 2.5, f.Conic.HyperbolaExtent)

	// Untouched keys keep their defaults.
	assert.Equal(t, "#FFFF00", f.Style.Accent)
	assert.Equal(t, 768, f.Render.Height)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeConfig(t, "[Style]\nGlowWidth = 3\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("unquoted hex color", func(t *testing.T) {
		// The # starts a comment, leaving the value empty.
		path := writeConfig(t, "[Style]\nCurve = #00FF00\n")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		tests := []struct {
			name, body string
		}{
			{"zero stroke width", "[Style]\nStrokeWidth = 0\n"},
			{"dash ratio above one", "[Style]\nDashRatio = 1.5\n"},
			{"negative skew", "[Solid]\nSkew = -0.5\n"},
			{"zero extent", "[Conic]\nHyperbolaExtent = 0\n"},
			{"zero canvas", "[Render]\nWidth = 0\n"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Load(writeConfig(t, tt.body))
				assert.Error(t, err)
			})
		}
	})
}

func TestFile_Theme(t *testing.T) {
	f := Default()
	theme := f.Theme()

	assert.InDelta(t, 1.0, theme.Curve.R, 1e-9)
	assert.InDelta(t, 1.0, theme.Accent.R, 1e-9)
	assert.InDelta(t, 0.0, theme.Accent.B, 1e-9)
	assert.Equal(t, 4.0, theme.StrokeWidth)
	assert.Equal(t, 0.15, theme.DashLength)
}

func TestFile_Projection(t *testing.T) {
	f := Default()
	p := f.Projection()
	assert.Equal(t, 0.5, p.Shortening)
	assert.InDelta(t, 0.785398, p.Angle, 1e-5)
}
