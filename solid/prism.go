package solid

import (
	"fmt"
	"math"

	"github.com/gogpu/mathfig"
)

// triangleBase returns an equilateral triangle of circumradius r in the
// base plane, corners at plan angles 90°, 210° and 330°: the first
// corner away from the viewer, the other two toward it.
func triangleBase(r float64) []mathfig.Vec3 {
	vs := make([]mathfig.Vec3, 0, 3)
	for _, deg := range []float64{90, 210, 330} {
		theta := deg * mathfig.Degree
		vs = append(vs, mathfig.V(-r*math.Sin(theta), r*math.Cos(theta), 0))
	}
	return vs
}

// TriangularPrism is a right prism over an equilateral triangle.
type TriangularPrism struct {
	Radius float64 // circumradius of the base triangle
	Height float64
	Center mathfig.Vec3 // base centroid

	poly *Polyhedron
}

// NewTriangularPrism creates a prism with the given base circumradius
// and height.
func NewTriangularPrism(radius, height float64) (*TriangularPrism, error) {
	if radius <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: prism radius and height must be positive, got %v/%v", radius, height)
	}
	return &TriangularPrism{Radius: radius, Height: height}, nil
}

// Vertices returns the bottom triangle followed by the top triangle.
func (pr *TriangularPrism) Vertices() []mathfig.Vec3 {
	base := triangleBase(pr.Radius)
	vs := make([]mathfig.Vec3, 0, 6)
	for _, v := range base {
		vs = append(vs, v.Add(pr.Center))
	}
	lift := mathfig.V(0, 0, pr.Height)
	for _, v := range base {
		vs = append(vs, v.Add(pr.Center).Add(lift))
	}
	return vs
}

var prismFaces = [][]int{
	{0, 1, 2},
	{3, 4, 5},
	{0, 1, 4, 3},
	{1, 2, 5, 4},
	{2, 0, 3, 5},
}

// Polyhedron returns the prism's topology, built on first use.
func (pr *TriangularPrism) Polyhedron() *Polyhedron {
	if pr.poly == nil {
		pr.poly = newPolyhedron(pr.Vertices(), prismFaces)
	}
	return pr.poly
}

// PrismOptions selects the projection, viewpoint and annotations.
type PrismOptions struct {
	Projection Projection
	Camera     mathfig.Vec3
	ShowLabels bool
}

// DefaultPrismOptions shows the vertex letters.
func DefaultPrismOptions() PrismOptions {
	return PrismOptions{ShowLabels: true}
}

// Build projects the prism's wireframe with hidden edges dashed.
func (pr *TriangularPrism) Build(theme *mathfig.Theme, opts PrismOptions) *mathfig.Group {
	t := theme.OrDefault()
	proj := opts.Projection.orDefault()
	camera := opts.Camera
	if camera == (mathfig.Vec3{}) {
		camera = DefaultCamera()
	}

	pr.poly = newPolyhedron(pr.Vertices(), prismFaces)
	g := mathfig.NewGroup(pr.poly.Build(t, proj, camera))
	if opts.ShowLabels {
		g.Add(vertexLabels(t, proj, pr.poly.Vertices, []string{"A", "B", "C", "A1", "B1", "C1"}))
	}
	return g
}

// UpdateVisibility reclassifies the wireframe built by Build.
func (pr *TriangularPrism) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	if pr.poly != nil {
		pr.poly.UpdateVisibility(theme, camera)
	}
}
