package mathfig

import "math"

// Degree converts degrees to radians when used as a multiplier,
// e.g. -135 * mathfig.Degree.
const Degree = math.Pi / 180

// Epsilon is the tolerance used when guarding degenerate geometry
// (near-zero denominators, near-coincident points).
const Epsilon = 1e-3

// Vec3 represents a 3D point or displacement vector.
// Figures drawn in the plane simply leave Z at zero.
type Vec3 struct {
	X, Y, Z float64
}

// V is a convenience function to create a Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Canonical direction vectors. These are mathematical constants, not
// style configuration; all style constants live on Theme.
var (
	Up    = Vec3{X: 0, Y: 1, Z: 0}
	Down  = Vec3{X: 0, Y: -1, Z: 0}
	Left  = Vec3{X: -1, Y: 0, Z: 0}
	Right = Vec3{X: 1, Y: 0, Z: 0}
	Out   = Vec3{X: 0, Y: 0, Z: 1}
	In    = Vec3{X: 0, Y: 0, Z: -1}
)

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared length of the vector.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two points.
// t=0 returns v, t=1 returns w.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Midpoint returns the point halfway between two points.
func (v Vec3) Midpoint(w Vec3) Vec3 {
	return v.Lerp(w, 0.5)
}

// RotateZ returns the vector rotated by angle radians around the Z axis,
// i.e. within the drawing plane.
func (v Vec3) RotateZ(angle float64) Vec3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Approx reports whether two vectors are equal within tolerance.
func (v Vec3) Approx(w Vec3, tol float64) bool {
	return math.Abs(v.X-w.X) <= tol &&
		math.Abs(v.Y-w.Y) <= tol &&
		math.Abs(v.Z-w.Z) <= tol
}
