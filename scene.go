package mathfig

import "github.com/gogpu/gg"

// Node is a drawable element of a figure. The concrete node types are
// Line, Polyline, Arc, Dot, Arrow, Label and Group.
type Node interface {
	isNode()
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Vec3
	Style      Style
}

func (*Line) isNode() {}

// Polyline is a chain of segments through consecutive points, optionally
// closed. Sampled parametric curves are emitted as polylines.
type Polyline struct {
	Points []Vec3
	Closed bool
	Style  Style
}

func (*Polyline) isNode() {}

// Arc is an axis-aligned elliptical arc: the parametric curve
// (Center.X + RX·cos t, Center.Y + RY·sin t) for t from Start over Sweep
// radians. A full ellipse is Start=0, Sweep=2π; circles use RX == RY.
type Arc struct {
	Center       Vec3
	RX, RY       float64
	Start, Sweep float64
	Style        Style
}

func (*Arc) isNode() {}

// Dot is a small filled disc marking a point of interest.
type Dot struct {
	Center Vec3
	Radius float64
	Style  Style
}

func (*Dot) isNode() {}

// Arrow is a segment with a filled triangular tip at End.
type Arrow struct {
	Start, End Vec3
	TipLength  float64
	Style      Style
}

func (*Arrow) isNode() {}

// Label is a text annotation anchored at a point. Size zero falls back
// to the renderer's default font size.
type Label struct {
	Text  string
	At    Vec3
	Size  float64
	Color gg.RGBA
}

func (*Label) isNode() {}

// Group aggregates nodes into a figure. Children draw in insertion
// order, so later nodes paint over earlier ones; builders rely on this
// for the textbook layering (hidden lines first, labels last).
type Group struct {
	children []Node
}

func (*Group) isNode() {}

// NewGroup creates a group containing the given nodes.
func NewGroup(nodes ...Node) *Group {
	g := &Group{children: make([]Node, 0, len(nodes))}
	g.Add(nodes...)
	return g
}

// Add appends nodes to the group. Nil nodes are skipped so that optional
// sub-figures can be added unconditionally.
func (g *Group) Add(nodes ...Node) *Group {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		g.children = append(g.children, n)
	}
	return g
}

// Children returns the group's direct children.
func (g *Group) Children() []Node {
	return g.children
}

// Len returns the number of direct children.
func (g *Group) Len() int {
	return len(g.children)
}

// Walk visits every non-group node in depth-first draw order.
func (g *Group) Walk(fn func(Node)) {
	for _, n := range g.children {
		if sub, ok := n.(*Group); ok {
			sub.Walk(fn)
			continue
		}
		fn(n)
	}
}

// Translate shifts every node of the group, recursively, by delta.
// Because builders compute all key points from one absolute anchor,
// translating a finished figure never changes its internal geometry.
func (g *Group) Translate(delta Vec3) {
	g.Walk(func(n Node) {
		switch n := n.(type) {
		case *Line:
			n.Start = n.Start.Add(delta)
			n.End = n.End.Add(delta)
		case *Polyline:
			for i := range n.Points {
				n.Points[i] = n.Points[i].Add(delta)
			}
		case *Arc:
			n.Center = n.Center.Add(delta)
		case *Dot:
			n.Center = n.Center.Add(delta)
		case *Arrow:
			n.Start = n.Start.Add(delta)
			n.End = n.End.Add(delta)
		case *Label:
			n.At = n.At.Add(delta)
		}
	})
}
