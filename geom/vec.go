// Package geom provides the 2D vector and triangle math behind the
// saturation/value triangle of a color wheel.
//
// Coordinates follow canvas conventions: origin at the top-left, X grows to
// the right, Y grows down. Nothing in this package knows about colors except
// the saturation/value mapping in satval.go, which is expressed purely in
// terms of triangle vertices.
package geom

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float64 {
	return math.Hypot(w.X-v.X, w.Y-v.Y)
}

// Lerp interpolates between v and w. t=0 returns v, t=1 returns w; t outside
// [0, 1] extrapolates.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{
		X: (1-t)*v.X + t*w.X,
		Y: (1-t)*v.Y + t*w.Y,
	}
}

// Approx returns true if two vectors are equal within epsilon on both axes.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Lerp interpolates between a and b. It is the free-function form of Vec2.Lerp.
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Lerp(b, t)
}

// Winding returns how far p lies from the directed line a->b, scaled by the
// line length. The sign tells which side p is on: for a triangle whose
// vertices are in canvas counter-clockwise order, interior points are
// positive for every edge.
func Winding(p, a, b Vec2) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// IntersectionParam returns t such that Lerp(a1, a2, t) lies on the line
// through b1 and b2. Parallel lines divide by zero and yield NaN or ±Inf.
func IntersectionParam(a1, a2, b1, b2 Vec2) float64 {
	return ((b1.X-a1.X)*(b1.Y-b2.Y) - (b1.Y-a1.Y)*(b1.X-b2.X)) /
		((a2.X-a1.X)*(b1.Y-b2.Y) - (a2.Y-a1.Y)*(b1.X-b2.X))
}

// ProjectOntoNormalAtHead projects v1 onto the line that passes through the
// head of v2 and is perpendicular to v2. A zero v2 yields NaN.
func ProjectOntoNormalAtHead(v1, v2 Vec2) Vec2 {
	sqx := v2.X * v2.X
	sqy := v2.Y * v2.Y
	d := sqx + sqy
	return Vec2{
		X: (sqy*(v2.X+v1.X) + v2.X*(sqx-v2.Y*v1.Y)) / d,
		Y: (sqx*(v2.Y+v1.Y) + v2.Y*(sqy-v2.X*v1.X)) / d,
	}
}
