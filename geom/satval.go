package geom

import "math"

// SatValFromPoint maps a canvas point to saturation and value on t.
//
// The point is confined to t first. Value is the distance travelled from B
// along B's bisector to reach the line through the point that is
// perpendicular to the bisector, relative to the triangle height: 0 at B,
// 1 on edge AC. Saturation is the position of the point along the
// constant-value segment from the BC side (0) to the BA side (1).
//
// At value 0 the segment collapses to B and saturation is reported as 0,
// whatever saturation was used to produce the point.
//
// SatValFromPoint panics if t is not valid, see Triangle.Confine.
func SatValFromPoint(p Vec2, t Triangle) (sat, val float64) {
	q := t.Confine(p)
	if q == t.B {
		return 0, 0
	}
	o := t.Centroid()
	rel := q.Sub(o)
	val = rel.Distance(ProjectOntoNormalAtHead(rel, t.B.Sub(o))) / (1.5 * t.Circumradius())

	satA := t.B.Lerp(t.A, val)
	satC := t.B.Lerp(t.C, val)
	sat = q.Distance(satC) / satA.Distance(satC)
	if math.IsNaN(sat) || math.IsInf(sat, 0) {
		sat = 0
	}
	return sat, val
}

// PointFromSatVal is the inverse of SatValFromPoint: it returns the canvas
// point on t for the given saturation and value. It panics if t is not valid.
func PointFromSatVal(sat, val float64, t Triangle) Vec2 {
	t.mustValidate()
	if val == 0 {
		return t.B
	}
	satA := t.B.Lerp(t.A, val)
	satC := t.B.Lerp(t.C, val)
	return satC.Lerp(satA, sat)
}
