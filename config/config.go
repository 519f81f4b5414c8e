// Package config loads figure defaults from INI files: theme colors and
// stroke parameters, solid projection constants, conic sampling densities
// and canvas settings.
package config

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/gogpu/gg"
	"github.com/gogpu/mathfig"
	"github.com/gogpu/mathfig/render"
	"github.com/gogpu/mathfig/solid"
)

// ExampleFile documents every supported key with its default value.
const ExampleFile = `[Style]
# Colors are hex strings, RGB or RRGGBB. They must be quoted: an
# unquoted # starts a comment.
Curve  = "#FFFFFF"
Accent = "#FFFF00"
Muted  = "#888888"
XAxis  = "#FF8080"
YAxis  = "#A6CF8C"
ZAxis  = "#58C4DD"
Label  = "#FFFFFF"

StrokeWidth = 4
PointRadius = 0.08
DashLength  = 0.15
DashRatio   = 0.5
FontSize    = 24
ArrowLength = 1.5

[Solid]
# Rim foreshortening for solids of revolution.
Skew = 0.5
# Depth foreshortening and receding-axis angle (degrees) for polyhedra.
Shortening = 0.5
ObliqueAngle = 45
# Where the oblique x axis leaves a figure, in degrees.
XAxisAngle = -135

[Conic]
# How far past the vertex each hyperbola branch is drawn.
HyperbolaExtent  = 4
HyperbolaSamples = 80
ParabolaSamples  = 100

[Render]
Width  = 1024
Height = 768
# Pixels per world unit.
Scale      = 80
Background = "#1C1C1C"
# TTF/OTF file for labels; labels are skipped when unset.
# FontPath = fonts/DejaVuSans.ttf
`

// StyleConfig mirrors the [Style] section.
type StyleConfig struct {
	Curve, Accent, Muted       string
	XAxis, YAxis, ZAxis, Label string

	StrokeWidth, PointRadius float64
	DashLength, DashRatio    float64
	FontSize, ArrowLength    float64
}

// SolidConfig mirrors the [Solid] section. Angles are in degrees.
type SolidConfig struct {
	Skew         float64
	Shortening   float64
	ObliqueAngle float64
	XAxisAngle   float64
}

// ConicConfig mirrors the [Conic] section.
type ConicConfig struct {
	HyperbolaExtent  float64
	HyperbolaSamples int
	ParabolaSamples  int
}

// RenderConfig mirrors the [Render] section.
type RenderConfig struct {
	Width, Height int
	Scale         float64
	Background    string
	FontPath      string
}

// File is a fully parsed configuration file.
type File struct {
	Style  StyleConfig
	Solid  SolidConfig
	Conic  ConicConfig
	Render RenderConfig
}

// Default returns the configuration matching ExampleFile.
func Default() *File {
	f := &File{}
	if err := gcfg.ReadStringInto(f, ExampleFile); err != nil {
		// ExampleFile is a compile-time constant; a parse failure is a
		// programming error.
		panic(fmt.Sprintf("config: invalid example file: %v", err))
	}
	return f
}

// Load reads path on top of the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*File, error) {
	f := Default()
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

func (f *File) validate() error {
	colors := map[string]string{
		"Style.Curve":       f.Style.Curve,
		"Style.Accent":      f.Style.Accent,
		"Style.Muted":       f.Style.Muted,
		"Style.XAxis":       f.Style.XAxis,
		"Style.YAxis":       f.Style.YAxis,
		"Style.ZAxis":       f.Style.ZAxis,
		"Style.Label":       f.Style.Label,
		"Render.Background": f.Render.Background,
	}
	for key, v := range colors {
		if v == "" {
			return fmt.Errorf("%s is empty; hex colors must be quoted, an unquoted # starts a comment", key)
		}
	}
	if f.Style.StrokeWidth <= 0 {
		return fmt.Errorf("Style.StrokeWidth must be positive, got %v", f.Style.StrokeWidth)
	}
	if f.Style.DashRatio <= 0 || f.Style.DashRatio > 1 {
		return fmt.Errorf("Style.DashRatio must be in (0, 1], got %v", f.Style.DashRatio)
	}
	if f.Solid.Skew <= 0 || f.Solid.Skew > 1 {
		return fmt.Errorf("Solid.Skew must be in (0, 1], got %v", f.Solid.Skew)
	}
	if f.Conic.HyperbolaExtent <= 0 {
		return fmt.Errorf("Conic.HyperbolaExtent must be positive, got %v", f.Conic.HyperbolaExtent)
	}
	if f.Render.Width <= 0 || f.Render.Height <= 0 {
		return fmt.Errorf("Render canvas must have positive dimensions, got %dx%d",
			f.Render.Width, f.Render.Height)
	}
	return nil
}

// Theme converts the [Style] section to a Theme.
func (f *File) Theme() *mathfig.Theme {
	return &mathfig.Theme{
		Curve:  gg.Hex(f.Style.Curve),
		Accent: gg.Hex(f.Style.Accent),
		Muted:  gg.Hex(f.Style.Muted),
		XAxis:  gg.Hex(f.Style.XAxis),
		YAxis:  gg.Hex(f.Style.YAxis),
		ZAxis:  gg.Hex(f.Style.ZAxis),
		Label:  gg.Hex(f.Style.Label),

		StrokeWidth: f.Style.StrokeWidth,
		PointRadius: f.Style.PointRadius,
		DashLength:  f.Style.DashLength,
		DashRatio:   f.Style.DashRatio,
		FontSize:    f.Style.FontSize,
		ArrowLength: f.Style.ArrowLength,
	}
}

// Projection converts the [Solid] section to a polyhedron projection.
func (f *File) Projection() solid.Projection {
	return solid.Projection{
		Shortening: f.Solid.Shortening,
		Angle:      f.Solid.ObliqueAngle * mathfig.Degree,
	}
}

// RenderOptions converts the [Render] section to canvas options.
func (f *File) RenderOptions() render.Options {
	return render.Options{
		Width:      f.Render.Width,
		Height:     f.Render.Height,
		Scale:      f.Render.Scale,
		Background: gg.Hex(f.Render.Background),
		FontPath:   f.Render.FontPath,
	}
}
