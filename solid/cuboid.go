package solid

import (
	"fmt"

	"github.com/gogpu/mathfig"
)

// Cuboid is an axis-aligned rectangular box anchored at vertex A.
type Cuboid struct {
	// Width runs right, Depth recedes, Height runs up.
	Width, Depth, Height float64
	Center               mathfig.Vec3

	poly *Polyhedron
}

// NewCuboid creates a box with the given dimensions.
func NewCuboid(width, depth, height float64) (*Cuboid, error) {
	if width <= 0 || depth <= 0 || height <= 0 {
		return nil, fmt.Errorf("solid: cuboid dimensions must be positive, got %v×%v×%v",
			width, depth, height)
	}
	return &Cuboid{Width: width, Depth: depth, Height: height}, nil
}

// Vertices returns the model-space corners with vertex A at Center.
func (c *Cuboid) Vertices() []mathfig.Vec3 {
	vs := boxVertices(c.Depth, c.Width, c.Height)
	for i := range vs {
		vs[i] = vs[i].Add(c.Center)
	}
	return vs
}

// Polyhedron returns the cuboid's topology, built on first use.
func (c *Cuboid) Polyhedron() *Polyhedron {
	if c.poly == nil {
		c.poly = newPolyhedron(c.Vertices(), boxFaces)
	}
	return c.poly
}

// CuboidOptions selects the projection, viewpoint and annotations.
type CuboidOptions struct {
	Projection Projection
	Camera     mathfig.Vec3
	ShowLabels bool
}

// DefaultCuboidOptions shows the vertex letters.
func DefaultCuboidOptions() CuboidOptions {
	return CuboidOptions{ShowLabels: true}
}

// Build projects the cuboid's wireframe with hidden edges dashed.
func (c *Cuboid) Build(theme *mathfig.Theme, opts CuboidOptions) *mathfig.Group {
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
	return g
}

// UpdateVisibility reclassifies the wireframe built by Build.
func (c *Cuboid) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	if c.poly != nil {
		c.poly.UpdateVisibility(theme, camera)
	}
}
