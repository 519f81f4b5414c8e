package mathfig

import "github.com/gogpu/gg"

// Dash describes a textbook dash pattern: Length is the length of one
// dash in world units, Ratio the fraction of each dash+gap period that
// is inked. A nil *Dash means a solid stroke.
type Dash struct {
	Length float64
	Ratio  float64
}

// NewDash creates a dash pattern. Non-positive length or a ratio outside
// (0, 1] returns nil, which draws solid.
func NewDash(length, ratio float64) *Dash {
	if length <= 0 || ratio <= 0 || ratio > 1 {
		return nil
	}
	return &Dash{Length: length, Ratio: ratio}
}

// Pattern returns the on/off segment lengths of one dash period.
func (d *Dash) Pattern() (on, off float64) {
	if d == nil || d.Length <= 0 || d.Ratio <= 0 || d.Ratio > 1 {
		return 0, 0
	}
	period := d.Length / d.Ratio
	return d.Length, period - d.Length
}

// IsDashed reports whether the pattern actually produces gaps.
func (d *Dash) IsDashed() bool {
	on, off := d.Pattern()
	return on > 0 && off > 0
}

// Style carries the stroke state of a single primitive.
// A zero Opacity is treated as fully opaque so that Style{} with only a
// color and width set behaves sensibly.
type Style struct {
	Color   gg.RGBA
	Width   float64
	Opacity float64
	Dash    *Dash
}

// IsDashed reports whether the style strokes with gaps.
func (s Style) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Alpha returns the effective alpha of the style, folding Opacity into
// the color's alpha channel.
func (s Style) Alpha() float64 {
	a := s.Color.A
	if a == 0 {
		a = 1
	}
	if s.Opacity > 0 {
		a *= s.Opacity
	}
	return a
}

// Theme names every color and stroke constant used by the figure
// builders. Builders take a *Theme explicitly; passing nil selects
// DefaultTheme. There are no package-level color globals.
type Theme struct {
	// Curve is the primary stroke color for curves and visible edges.
	Curve gg.RGBA
	// Accent marks foci, centers and other highlighted points.
	Accent gg.RGBA
	// Muted is used for hidden edges, directrices and helper lines.
	Muted gg.RGBA
	// Axis colors follow the textbook convention: x red, y green, z blue.
	XAxis, YAxis, ZAxis gg.RGBA
	// Label is the text color for coordinate and equation labels.
	Label gg.RGBA

	StrokeWidth float64 // main curve stroke width
	PointRadius float64 // dot radius for foci/vertices
	DashLength  float64 // dash length for hidden/helper lines
	DashRatio   float64 // inked fraction of a dash period
	FontSize    float64 // label font size
	ArrowLength float64 // outer axis arrow length
}

// DefaultTheme returns the standard textbook palette: white curves on a
// dark background, yellow accents, gray hidden lines.
func DefaultTheme() *Theme {
	return &Theme{
		Curve:       gg.RGB(1, 1, 1),
		Accent:      gg.Hex("#FFFF00"),
		Muted:       gg.Hex("#888888"),
		XAxis:       gg.Hex("#FF8080"),
		YAxis:       gg.Hex("#A6CF8C"),
		ZAxis:       gg.Hex("#58C4DD"),
		Label:       gg.Hex("#FFFF00"),
		StrokeWidth: 4,
		PointRadius: 0.08,
		DashLength:  0.15,
		DashRatio:   0.5,
		FontSize:    24,
		ArrowLength: 1.5,
	}
}

// OrDefault returns the theme itself, or DefaultTheme when nil.
func (t *Theme) OrDefault() *Theme {
	if t == nil {
		return DefaultTheme()
	}
	return t
}

// Dash returns the theme's standard dash pattern.
func (t *Theme) Dash() *Dash {
	return NewDash(t.DashLength, t.DashRatio)
}

// Solid returns the standard stroke style for visible curves.
func (t *Theme) Solid() Style {
	return Style{Color: t.Curve, Width: t.StrokeWidth}
}

// Hidden returns the stroke style for hidden edges: muted, thinner,
// semi-transparent and dashed.
func (t *Theme) Hidden() Style {
	return Style{
		Color:   t.Muted,
		Width:   t.StrokeWidth * 0.7,
		Opacity: 0.6,
		Dash:    t.Dash(),
	}
}

// Helper returns the stroke style for construction lines such as
// directrices and radius markers.
func (t *Theme) Helper() Style {
	return Style{
		Color: t.Muted,
		Width: t.StrokeWidth * 0.6,
		Dash:  t.Dash(),
	}
}
