package solid

import (
	"fmt"

	"github.com/gogpu/mathfig"
)

// boxVertexNames are the textbook labels of a box: ABCD around the
// bottom face, A1..D1 stacked above.
var boxVertexNames = [8]string{"A", "B", "C", "D", "A1", "B1", "C1", "D1"}

// boxFaces is the face topology shared by cubes and cuboids.
var boxFaces = [][]int{
	{0, 1, 2, 3}, // bottom
	{4, 5, 6, 7}, // top
	{0, 1, 5, 4},
	{1, 2, 6, 5},
	{2, 3, 7, 6},
	{3, 0, 4, 7},
}

// boxLabelOffsets places each vertex letter clear of the wireframe:
// bottom letters below the vertex, top letters above, spread left and
// right with the projection.
var boxLabelOffsets = map[string]mathfig.Vec3{
	"A":  {X: -0.3, Y: -0.3},
	"B":  {X: 0.3, Y: -0.3},
	"C":  {X: 0.35, Y: -0.15},
	"D":  {X: -0.35, Y: -0.15},
	"A1": {X: -0.3, Y: 0.3},
	"B1": {X: 0.3, Y: 0.3},
	"C1": {X: 0.35, Y: 0.2},
	"D1": {X: -0.35, Y: 0.2},
}

func boxVertexIndex(name string) (int, bool) {
	for i, n := range boxVertexNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// boxVertices lays out a box of the given dimensions with vertex A at
// the model origin: A and B span the front edge, C and D sit behind
// them, A1..D1 above.
func boxVertices(depth, width, height float64) []mathfig.Vec3 {
	return []mathfig.Vec3{
		mathfig.V(0, 0, 0),
		mathfig.V(0, width, 0),
		mathfig.V(depth, width, 0),
		mathfig.V(depth, 0, 0),
		mathfig.V(0, 0, height),
		mathfig.V(0, width, height),
		mathfig.V(depth, width, height),
		mathfig.V(depth, 0, height),
	}
}

// boxLabels builds the vertex letters of a projected box.
func boxLabels(t *mathfig.Theme, proj Projection, vertices []mathfig.Vec3) *mathfig.Group {
	g := mathfig.NewGroup()
	for i, name := range boxVertexNames {
		g.Add(&mathfig.Label{
			Text:  name,
			At:    proj.Project(vertices[i]).Add(boxLabelOffsets[name]),
			Size:  t.FontSize * 0.75,
			Color: t.Label,
		})
	}
	return g
}

// Cube is an axis-aligned cube anchored at a chosen vertex.
type Cube struct {
	Side float64
	// Center is the model-space position of the origin vertex.
	Center mathfig.Vec3
	// Origin names the vertex anchored at Center (default A).
	Origin string

	poly *Polyhedron
}

// NewCube creates a cube with the given side, anchored at the named
// vertex (empty means A).
func NewCube(side float64, origin string) (*Cube, error) {
	if side <= 0 {
		return nil, fmt.Errorf("solid: cube side must be positive, got %v", side)
	}
	if origin == "" {
		origin = "A"
	}
	if _, ok := boxVertexIndex(origin); !ok {
		return nil, fmt.Errorf("solid: unknown cube vertex %q, must be one of A..D, A1..D1", origin)
	}
	return &Cube{Side: side, Origin: origin}, nil
}

// Vertices returns the model-space corners, shifted so the origin vertex
// sits at Center.
func (c *Cube) Vertices() []mathfig.Vec3 {
	vs := boxVertices(c.Side, c.Side, c.Side)
	oi, _ := boxVertexIndex(c.Origin)
	shift := c.Center.Sub(vs[oi])
	for i := range vs {
		vs[i] = vs[i].Add(shift)
	}
	return vs
}

// Polyhedron returns the cube's topology, built on first use.
func (c *Cube) Polyhedron() *Polyhedron {
	if c.poly == nil {
		c.poly = newPolyhedron(c.Vertices(), boxFaces)
	}
	return c.poly
}

// CubeOptions selects the projection, viewpoint and annotations.
type CubeOptions struct {
	Projection Projection   // zero selects DefaultProjection
	Camera     mathfig.Vec3 // zero selects DefaultCamera
	ShowLabels bool
	ShowAxes   bool
}

// DefaultCubeOptions shows the vertex letters.
func DefaultCubeOptions() CubeOptions {
	return CubeOptions{ShowLabels: true}
}

// Build projects the cube's wireframe with hidden edges dashed. A nil
// theme selects the default.
func (c *Cube) Build(theme *mathfig.Theme, opts CubeOptions) *mathfig.Group {
	t := theme.OrDefault()
	proj := opts.Projection.orDefault()
	camera := opts.Camera
	if camera == (mathfig.Vec3{}) {
		camera = DefaultCamera()
	}

	c.poly = newPolyhedron(c.Vertices(), boxFaces)
	g := mathfig.NewGroup(c.poly.Build(t, proj, camera))

	if opts.ShowLabels {
		g.Add(boxLabels(t, proj, c.poly.Vertices))
	}
	if opts.ShowAxes {
		anchor := proj.Project(c.Center)
		g.Add(ObliqueAxes(t, anchor, DefaultXAxisAngle, c.Side*1.2, c.Side*1.2, c.Side*1.2))
	}
	return g
}

// UpdateVisibility reclassifies the wireframe built by Build for a new
// camera, restyling the existing lines in place.
func (c *Cube) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	if c.poly != nil {
		c.poly.UpdateVisibility(theme, camera)
	}
}
