package solid

import (
	"fmt"

	"github.com/gogpu/mathfig"
)

// Edge is an undirected edge between two vertex indices, stored with
// A < B so equal edges compare equal.
type Edge struct {
	A, B int
}

func newEdge(i, j int) Edge {
	if i > j {
		i, j = j, i
	}
	return Edge{A: i, B: j}
}

// Polyhedron is a closed solid given by its vertices and faces, each face
// a cycle of vertex indices. The edge set and the edge to face incidence
// are derived once at construction; face orientation is corrected so that
// every normal points away from the centroid.
type Polyhedron struct {
	Vertices []mathfig.Vec3
	Faces    [][]int

	edges     []Edge
	edgeFaces map[Edge][]int

	// lines are the projected edge nodes owned by the last Build call,
	// index-aligned with edges, restyled by UpdateVisibility.
	lines []*mathfig.Line
}

// NewPolyhedron validates the topology and builds the derived edge data.
func NewPolyhedron(vertices []mathfig.Vec3, faces [][]int) (*Polyhedron, error) {
	if len(vertices) < 4 || len(faces) < 4 {
		return nil, fmt.Errorf("solid: polyhedron needs at least 4 vertices and 4 faces, got %d/%d",
			len(vertices), len(faces))
	}
	for fi, f := range faces {
		if len(f) < 3 {
			return nil, fmt.Errorf("solid: face %d has %d vertices, need at least 3", fi, len(f))
		}
		for _, vi := range f {
			if vi < 0 || vi >= len(vertices) {
				return nil, fmt.Errorf("solid: face %d references vertex %d, have %d vertices",
					fi, vi, len(vertices))
			}
		}
	}
	return newPolyhedron(vertices, faces), nil
}

// newPolyhedron builds the derived data for topology known to be valid.
// Faces are copied: orientation correction must not write back into the
// caller's (possibly shared) slices.
func newPolyhedron(vertices []mathfig.Vec3, faces [][]int) *Polyhedron {
	owned := make([][]int, len(faces))
	for i, f := range faces {
		owned[i] = append([]int(nil), f...)
	}
	p := &Polyhedron{
		Vertices:  vertices,
		Faces:     owned,
		edgeFaces: make(map[Edge][]int),
	}
	for fi, f := range faces {
		for i := range f {
			e := newEdge(f[i], f[(i+1)%len(f)])
			if _, seen := p.edgeFaces[e]; !seen {
				p.edges = append(p.edges, e)
			}
			p.edgeFaces[e] = append(p.edgeFaces[e], fi)
		}
	}
	p.orientFaces()
	return p
}

// orientFaces flips any face whose normal points toward the centroid, so
// the visibility predicate can rely on outward normals regardless of the
// winding the caller used.
func (p *Polyhedron) orientFaces() {
	var centroid mathfig.Vec3
	for _, v := range p.Vertices {
		centroid = centroid.Add(v)
	}
	centroid = centroid.Mul(1 / float64(len(p.Vertices)))

	for fi, f := range p.Faces {
		if p.FaceNormal(fi).Dot(p.FaceCenter(fi).Sub(centroid)) < 0 {
			for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
				f[i], f[j] = f[j], f[i]
			}
		}
	}
}

// Edges returns the unique edges in first-seen face order.
func (p *Polyhedron) Edges() []Edge {
	return p.edges
}

// EdgeFaces returns the indices of the faces incident to e.
func (p *Polyhedron) EdgeFaces(e Edge) []int {
	return p.edgeFaces[e]
}

// FaceNormal returns the unit normal of face fi by the right-hand rule on
// its first three vertices. A degenerate face gets +Z.
func (p *Polyhedron) FaceNormal(fi int) mathfig.Vec3 {
	f := p.Faces[fi]
	v0 := p.Vertices[f[0]]
	n := p.Vertices[f[1]].Sub(v0).Cross(p.Vertices[f[2]].Sub(v0))
	if n.Length() < mathfig.Epsilon {
		mathfig.Logger().Warn("degenerate polyhedron face, using +Z normal", "face", fi)
		return mathfig.Out
	}
	return n.Normalize()
}

// FaceCenter returns the mean of the face's vertices.
func (p *Polyhedron) FaceCenter(fi int) mathfig.Vec3 {
	var c mathfig.Vec3
	for _, vi := range p.Faces[fi] {
		c = c.Add(p.Vertices[vi])
	}
	return c.Mul(1 / float64(len(p.Faces[fi])))
}

// FaceVisible reports whether face fi is turned toward the camera.
func (p *Polyhedron) FaceVisible(fi int, camera mathfig.Vec3) bool {
	view := p.FaceCenter(fi).Sub(camera).Normalize()
	return view.Dot(p.FaceNormal(fi)) < 0
}

// EdgeHidden reports whether e is hidden from the camera: true exactly
// when every face incident to e is back-facing.
func (p *Polyhedron) EdgeHidden(e Edge, camera mathfig.Vec3) bool {
	for _, fi := range p.edgeFaces[e] {
		if p.FaceVisible(fi, camera) {
			return false
		}
	}
	return true
}

// HiddenEdges returns the edges hidden from the camera.
func (p *Polyhedron) HiddenEdges(camera mathfig.Vec3) []Edge {
	var hidden []Edge
	for _, e := range p.edges {
		if p.EdgeHidden(e, camera) {
			hidden = append(hidden, e)
		}
	}
	return hidden
}

// Build projects every edge to the drawing plane and styles it solid or
// dashed for the given camera. The returned group owns one line per edge;
// UpdateVisibility restyles those same lines in place.
func (p *Polyhedron) Build(theme *mathfig.Theme, proj Projection, camera mathfig.Vec3) *mathfig.Group {
	t := theme.OrDefault()
	proj = proj.orDefault()

	g := mathfig.NewGroup()
	p.lines = p.lines[:0]
	for _, e := range p.edges {
		style := t.Solid()
		if p.EdgeHidden(e, camera) {
			style = t.Hidden()
		}
		line := &mathfig.Line{
			Start: proj.Project(p.Vertices[e.A]),
			End:   proj.Project(p.Vertices[e.B]),
			Style: style,
		}
		p.lines = append(p.lines, line)
		g.Add(line)
	}
	return g
}

// UpdateVisibility reclassifies every edge against a new camera and
// restyles the lines created by Build. Calling it again with the same
// camera is a no-op in effect; calling it before Build only refreshes
// the classification.
func (p *Polyhedron) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	t := theme.OrDefault()
	for i, e := range p.edges {
		if i >= len(p.lines) {
			return
		}
		if p.EdgeHidden(e, camera) {
			p.lines[i].Style = t.Hidden()
		} else {
			p.lines[i].Style = t.Solid()
		}
	}
}
