// Package render rasterizes mathfig scene graphs through the gg
// vector-graphics engine. World coordinates are y-up and centered;
// image coordinates are y-down from the top-left corner.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/mathfig"
)

// Options configure the canvas.
type Options struct {
	Width, Height int
	// Scale is the number of pixels per world unit. Zero selects 80.
	Scale      float64
	Background gg.RGBA
	// FontPath names a TTF/OTF file for labels. Empty means labels are
	// skipped.
	FontPath string
}

// DefaultOptions is a 1024×768 canvas on a dark background.
func DefaultOptions() Options {
	return Options{
		Width:      1024,
		Height:     768,
		Scale:      80,
		Background: gg.Hex("#1C1C1C"),
	}
}

// Renderer draws scene graphs onto one gg context.
type Renderer struct {
	ctx    *gg.Context
	scale  float64
	cx, cy float64
	font   *text.FontSource
}

// New creates a renderer with a cleared canvas.
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("render: canvas must have positive dimensions, got %dx%d",
			opts.Width, opts.Height)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 80
	}

	ctx := gg.NewContext(opts.Width, opts.Height)
	ctx.ClearWithColor(opts.Background)

	r := &Renderer{
		ctx:   ctx,
		scale: scale,
		cx:    float64(opts.Width) / 2,
		cy:    float64(opts.Height) / 2,
	}

	if opts.FontPath != "" {
		font, err := text.NewFontSourceFromFile(opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("render: load font: %w", err)
		}
		r.font = font
	}
	return r, nil
}

// point maps a world position to image coordinates.
func (r *Renderer) point(v mathfig.Vec3) (x, y float64) {
	return r.cx + v.X*r.scale, r.cy - v.Y*r.scale
}

// Render draws every leaf node of the scene graph in depth-first order.
func (r *Renderer) Render(root *mathfig.Group) error {
	var firstErr error
	root.Walk(func(n mathfig.Node) {
		if err := r.drawNode(n); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}

func (r *Renderer) drawNode(n mathfig.Node) error {
	switch v := n.(type) {
	case *mathfig.Line:
		return r.drawLine(v)
	case *mathfig.Polyline:
		return r.drawPolyline(v)
	case *mathfig.Arc:
		return r.drawArc(v)
	case *mathfig.Dot:
		return r.drawDot(v)
	case *mathfig.Arrow:
		return r.drawArrow(v)
	case *mathfig.Label:
		return r.drawLabel(v)
	}
	return nil
}

// applyStroke sets color, width and dash pattern for a stroked node.
func (r *Renderer) applyStroke(s mathfig.Style) {
	col := s.Color
	col.A = s.Alpha()
	r.ctx.SetColor(col.Color())

	width := s.Width
	if width <= 0 {
		width = 2
	}
	r.ctx.SetLineWidth(width)

	if s.Dash != nil {
		on, off := s.Dash.Pattern()
		r.ctx.SetDash(on*r.scale, off*r.scale)
	} else {
		r.ctx.ClearDash()
	}
}

func (r *Renderer) drawLine(l *mathfig.Line) error {
	r.applyStroke(l.Style)
	x1, y1 := r.point(l.Start)
	x2, y2 := r.point(l.End)
	r.ctx.DrawLine(x1, y1, x2, y2)
	return r.ctx.Stroke()
}

func (r *Renderer) drawPolyline(p *mathfig.Polyline) error {
	if len(p.Points) < 2 {
		return nil
	}
	r.applyStroke(p.Style)
	x, y := r.point(p.Points[0])
	r.ctx.MoveTo(x, y)
	for _, pt := range p.Points[1:] {
		x, y = r.point(pt)
		r.ctx.LineTo(x, y)
	}
	if p.Closed {
		r.ctx.ClosePath()
	}
	return r.ctx.Stroke()
}

// drawArc strokes the arc as a flattened polyline. The points are
// sampled in world space and mapped one by one: DrawEllipticalArc
// transforms only the arc center, not the radii, so it cannot be used
// with a scaled coordinate frame.
func (r *Renderer) drawArc(a *mathfig.Arc) error {
	r.applyStroke(a.Style)
	n := arcSteps(a.RX, a.RY, a.Sweep, r.scale)
	for i := 0; i <= n; i++ {
		angle := a.Start + a.Sweep*float64(i)/float64(n)
		p := a.Center.Add(mathfig.V(a.RX*math.Cos(angle), a.RY*math.Sin(angle), 0))
		x, y := r.point(p)
		if i == 0 {
			r.ctx.NewSubPath()
			r.ctx.MoveTo(x, y)
		} else {
			r.ctx.LineTo(x, y)
		}
	}
	return r.ctx.Stroke()
}

// arcSteps picks a segment count that keeps the chord deviation under
// about an eighth of a pixel.
func arcSteps(rx, ry, sweep, scale float64) int {
	rmax := math.Max(rx, ry) * scale
	n := int(math.Ceil(math.Abs(sweep) * math.Sqrt(rmax)))
	if n < 8 {
		n = 8
	}
	if n > 512 {
		n = 512
	}
	return n
}

func (r *Renderer) drawDot(d *mathfig.Dot) error {
	col := d.Style.Color
	col.A = d.Style.Alpha()
	r.ctx.SetColor(col.Color())
	r.ctx.ClearDash()
	x, y := r.point(d.Center)
	r.ctx.DrawCircle(x, y, d.Radius*r.scale)
	return r.ctx.Fill()
}

func (r *Renderer) drawArrow(a *mathfig.Arrow) error {
	tip := a.TipLength
	if tip <= 0 {
		tip = 0.18
	}
	dir := a.End.Sub(a.Start).Normalize()
	if dir == (mathfig.Vec3{}) {
		return nil
	}

	// Shaft stops where the head begins so the dash pattern does not
	// bleed into the tip.
	base := a.End.Sub(dir.Mul(tip))
	if err := r.drawLine(&mathfig.Line{Start: a.Start, End: base, Style: a.Style}); err != nil {
		return err
	}

	const halfAngle = 26 * mathfig.Degree
	left := a.End.Sub(dir.RotateZ(halfAngle).Mul(tip * 1.2))
	right := a.End.Sub(dir.RotateZ(-halfAngle).Mul(tip * 1.2))

	col := a.Style.Color
	col.A = a.Style.Alpha()
	r.ctx.SetColor(col.Color())
	r.ctx.ClearDash()

	x, y := r.point(a.End)
	r.ctx.MoveTo(x, y)
	x, y = r.point(left)
	r.ctx.LineTo(x, y)
	x, y = r.point(right)
	r.ctx.LineTo(x, y)
	r.ctx.ClosePath()
	return r.ctx.Fill()
}

func (r *Renderer) drawLabel(l *mathfig.Label) error {
	if r.font == nil {
		mathfig.Logger().Debug("no font configured, skipping label", "text", l.Text)
		return nil
	}
	size := l.Size
	if size <= 0 {
		size = 24
	}
	r.ctx.SetFont(r.font.Face(size))

	col := l.Color
	if col == (gg.RGBA{}) {
		col = gg.RGB(1, 1, 1)
	}
	r.ctx.SetColor(col.Color())
	r.ctx.ClearDash()

	x, y := r.point(l.At)
	r.ctx.DrawStringAnchored(l.Text, x, y, 0.5, 0.5)
	return nil
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.ctx.Image()
}

// SavePNG writes the canvas to a PNG file.
func (r *Renderer) SavePNG(path string) error {
	return r.ctx.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}

// WorldBounds returns the world-space rectangle visible on the canvas,
// as (minX, minY, maxX, maxY).
func (r *Renderer) WorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := r.cx / r.scale
	halfH := r.cy / r.scale
	return -halfW, -halfH, halfW, halfH
}

// FitScale returns the scale that fits a world radius inside the canvas
// with a margin fraction.
func FitScale(width, height int, radius, margin float64) float64 {
	usable := math.Min(float64(width), float64(height)) * (1 - margin)
	return usable / (2 * radius)
}
