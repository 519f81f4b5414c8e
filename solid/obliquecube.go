package solid

import (
	"github.com/gogpu/mathfig"
)

// ObliqueCube is the classic blackboard cube: cavalier projection with
// the receding axis at 45° and depth halved, vertex letters on every
// corner, and the three far edges dashed. The hidden edges come from
// the shared face-visibility predicate applied with the projection's
// implied viewpoint, so they stay correct if the camera moves.
type ObliqueCube struct {
	Side       float64
	Center     mathfig.Vec3
	Projection Projection

	cube *Cube
}

// NewObliqueCube creates the textbook cube of the given side, anchored
// at vertex A.
func NewObliqueCube(side float64) (*ObliqueCube, error) {
	cube, err := NewCube(side, "A")
	if err != nil {
		return nil, err
	}
	return &ObliqueCube{Side: side, Projection: DefaultProjection(), cube: cube}, nil
}

// ObliqueCubeOptions selects the annotations.
type ObliqueCubeOptions struct {
	Camera     mathfig.Vec3 // zero selects DefaultCamera
	ShowLabels bool
	ShowAxes   bool
}

// DefaultObliqueCubeOptions shows the vertex letters.
func DefaultObliqueCubeOptions() ObliqueCubeOptions {
	return ObliqueCubeOptions{ShowLabels: true}
}

// Build draws the cube. A nil theme selects the default.
func (o *ObliqueCube) Build(theme *mathfig.Theme, opts ObliqueCubeOptions) *mathfig.Group {
	o.cube.Side = o.Side
	o.cube.Center = o.Center
	return o.cube.Build(theme, CubeOptions{
		Projection: o.Projection,
		Camera:     opts.Camera,
		ShowLabels: opts.ShowLabels,
		ShowAxes:   opts.ShowAxes,
	})
}

// UpdateVisibility reclassifies the wireframe for a new camera.
func (o *ObliqueCube) UpdateVisibility(theme *mathfig.Theme, camera mathfig.Vec3) {
	o.cube.UpdateVisibility(theme, camera)
}

// HiddenEdges returns the edges dashed for the given camera.
func (o *ObliqueCube) HiddenEdges(camera mathfig.Vec3) []Edge {
	return o.cube.Polyhedron().HiddenEdges(camera)
}
