package solid

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// vertexLabels builds one letter per projected vertex, each pushed away
// from the projected centroid so it clears the wireframe.
func vertexLabels(t *mathfig.Theme, proj Projection, vertices []mathfig.Vec3, names []string) *mathfig.Group {
	var center mathfig.Vec3
	for _, v := range vertices {
		center = center.Add(proj.Project(v))
	}
	center = center.Mul(1 / float64(len(vertices)))

	g := mathfig.NewGroup()
	for i, name := range names {
		at := proj.Project(vertices[i])
		dir := at.Sub(center).Normalize()
		if dir == (mathfig.Vec3{}) {
			dir = mathfig.Down
		}
		g.Add(&mathfig.Label{
			Text:  name,
			At:    at.Add(dir.Mul(0.35)),
			Size:  t.FontSize * 0.75,
			Color: t.Label,
		})
	}
	return g
}

// Pyramid is a right pyramid over a square base, drawn in the diamond
// orientation: the base corners sit on the depth and horizontal axes.
type Pyramid struct {
	Base   float64 // side of the square base
	Height float64
	Center mathfig.Vec3 // base center

	poly *Polyhedron
}

// NewPyramid creates a square pyramid.
func NewPyramid(base, height float64) (*Pyramid, error) {
	if base <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: pyramid base and height must be positive, got %v/%v", base, height)
	}
	return &Pyramid{Base: base, Height: height}, nil
}

// Vertices returns the four base corners (far, right, near, left) and
// the apex.
func (p *Pyramid) Vertices() []mathfig.Vec3 {
	r := p.Base * math.Sqrt2 / 2
	return []mathfig.Vec3{
		p.Center.Add(mathfig.V(-r, 0, 0)),
		p.Center.Add(mathfig.V(0, r, 0)),
		p.Center.Add(mathfig.V(r, 0, 0)),
		p.Center.Add(mathfig.V(0, -r, 0)),
		p.Center.Add(mathfig.V(0, 0, p.Height)),
	}
}

var pyramidFaces = [][]int{
	{0, 1, 2, 3},
	{0, 1, 4},
	{1, 2, 4},
	{2, 3, 4},
	{3, 0, 4},
}

// Polyhedron returns the pyramid's topology, built on first use.
func (p *Pyramid) Polyhedron() *Polyhedron {
	if p.poly == nil {
		p.poly = newPolyhedron(p.Vertices(), pyramidFaces)
	}
	return p.poly
}

// PyramidOptions selects the projection, viewpoint and annotations.
type PyramidOptions struct {
	Projection Projection
	Camera     mathfig.Vec3
	ShowLabels bool
}

// DefaultPyramidOptions shows the vertex letters.
func DefaultPyramidOptions() PyramidOptions {
	return PyramidOptions{ShowLabels: true}
}

// Build projects the pyramid's wireframe with hidden edges dashed.
func (p *Pyramid) Build(theme *mathfig.Theme, opts PyramidOptions) *mathfig.Group {
	t := theme.OrDefault()
	proj := opts.Projection.orDefault()
	camera := opts.Camera
	if camera == (mathfig.Vec3{}) {
		camera = DefaultCamera()
	}

	p.poly = newPolyhedron(p.Vertices(), pyramidFaces)
	g := mathfig.NewGroup(p.poly.Build(t, proj, camera))
	if opts.ShowLabels {
		g.Add(vertexLabels(t, proj, p.poly.Vertices, []string{"A", "B", "C", "D", "S"}))
	}
	return g
}

// UpdateVisibility reclassifies the wireframe built by Build.
func (p *Pyramid) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	if p.poly != nil {
		p.poly.UpdateVisibility(theme, camera)
	}
}

// Tetrahedron is a regular tetrahedron standing on one face.
type Tetrahedron struct {
	Side   float64
	Center mathfig.Vec3 // base centroid

	poly *Polyhedron
}

// NewTetrahedron creates a regular tetrahedron with the given edge.
func NewTetrahedron(side float64) (*Tetrahedron, error) {
	if side <= 0 {
		return nil, fmt.Errorf("solid: tetrahedron side must be positive, got %v", side)
	}
	return &Tetrahedron{Side: side}, nil
}

// Vertices returns the base triangle (front, back-right, back-left in
// plan) and the apex above the centroid.
func (td *Tetrahedron) Vertices() []mathfig.Vec3 {
	r := td.Side / math.Sqrt(3)
	h := td.Side * math.Sqrt(2.0/3.0)
	vs := triangleBase(r)
	for i := range vs {
		vs[i] = vs[i].Add(td.Center)
	}
	return append(vs, td.Center.Add(mathfig.V(0, 0, h)))
}

var tetrahedronFaces = [][]int{
	{0, 1, 2},
	{0, 1, 3},
	{1, 2, 3},
	{2, 0, 3},
}

// Polyhedron returns the tetrahedron's topology, built on first use.
func (td *Tetrahedron) Polyhedron() *Polyhedron {
	if td.poly == nil {
		td.poly = newPolyhedron(td.Vertices(), tetrahedronFaces)
	}
	return td.poly
}

// Build projects the tetrahedron's wireframe with hidden edges dashed.
func (td *Tetrahedron) Build(theme *mathfig.Theme, opts PyramidOptions) *mathfig.Group {
	t := theme.OrDefault()
	proj := opts.Projection.orDefault()
	camera := opts.Camera
	if camera == (mathfig.Vec3{}) {
		camera = DefaultCamera()
	}

	td.poly = newPolyhedron(td.Vertices(), tetrahedronFaces)
	g := mathfig.NewGroup(td.poly.Build(t, proj, camera))
	if opts.ShowLabels {
		g.Add(vertexLabels(t, proj, td.poly.Vertices, []string{"A", "B", "C", "S"}))
	}
	return g
}

// UpdateVisibility reclassifies the wireframe built by Build.
func (td *Tetrahedron) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	if td.poly != nil {
		td.poly.UpdateVisibility(theme, camera)
	}
}
