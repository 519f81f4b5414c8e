// Package solid builds oblique-projection figures of elementary solids:
// cubes, cuboids, pyramids, prisms, cylinders, cones, frustums and spheres.
//
// Polyhedra are modeled in a right-handed 3D frame (X depth toward the
// viewer, Y right, Z up) and flattened to the drawing plane through a
// Projection. Edge visibility comes from one shared predicate on the
// polyhedron's face topology: an edge is drawn dashed exactly when every
// face incident to it turns away from the viewpoint. Solids of revolution
// are drawn directly in the plane with a skewed base ellipse, splitting
// each rim into a near solid arc and a far dashed arc.
package solid
