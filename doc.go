// Package mathfig provides scene-graph components for didactic geometry
// figures: analytic conic sections and oblique-projection solids drawn in
// the style of secondary-school mathematics textbooks.
//
// The package itself holds the shared core: 3D vector math, the drawable
// primitive nodes (lines, elliptical arcs, dots, arrows, text labels),
// dash patterns, and the Theme that carries every color and stroke
// constant. Figure builders live in the conic and solid subpackages and
// emit trees of these nodes; the render subpackage rasterizes a tree
// through github.com/gogpu/gg.
//
// All builders are pure: given the same parameters they produce the same
// node tree, and no package-level state is consulted except the logger.
package mathfig
