package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidTriangle is returned for triangles with zero area, non-finite
// vertices or clockwise vertex order. It indicates a caller bug, not bad
// user input.
var ErrInvalidTriangle = errors.New("geom: invalid triangle")

// Triangle is a saturation/value triangle. The vertex roles are fixed:
//
//   - A is the hue vertex (full saturation, full value)
//   - B is the black vertex (value 0)
//   - C is the white vertex (zero saturation, full value)
//
// Vertices must be in counter-clockwise order on the canvas, so that
// Winding is positive inside for the edges AB, BC and CA.
type Triangle struct {
	A, B, C Vec2
}

// NewTriangle returns the triangle (a, b, c) after validating it.
func NewTriangle(a, b, c Vec2) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}
	return t, nil
}

// Validate reports ErrInvalidTriangle if t is degenerate or clockwise.
func (t Triangle) Validate() error {
	if !t.A.IsFinite() || !t.B.IsFinite() || !t.C.IsFinite() {
		return fmt.Errorf("%w: non-finite vertex", ErrInvalidTriangle)
	}
	w := Winding(t.C, t.A, t.B)
	switch {
	case w == 0:
		return fmt.Errorf("%w: zero area", ErrInvalidTriangle)
	case w < 0:
		return fmt.Errorf("%w: vertices are clockwise", ErrInvalidTriangle)
	}
	return nil
}

func (t Triangle) mustValidate() {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}

// Vertices returns A, B and C in order.
func (t Triangle) Vertices() [3]Vec2 {
	return [3]Vec2{t.A, t.B, t.C}
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Vec2 {
	return Vec2{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Circumradius returns the distance from the centroid to B. For the
// equilateral triangles drawn on a color wheel this is the circumradius.
func (t Triangle) Circumradius() float64 {
	return t.Centroid().Distance(t.B)
}

// Contains reports whether p lies strictly inside t.
func (t Triangle) Contains(p Vec2) bool {
	return Winding(p, t.A, t.B) > 0 &&
		Winding(p, t.B, t.C) > 0 &&
		Winding(p, t.C, t.A) > 0
}

// Region locates a point relative to the three edge lines of a triangle.
type Region int

const (
	// RegionUnknown is reported when no edge test passes. It cannot happen
	// for a valid triangle and a finite point.
	RegionUnknown Region = iota
	// Inside: inside all three edges.
	Inside
	// OutsideAB: beyond edge AB only.
	OutsideAB
	// OutsideBC: beyond edge BC only.
	OutsideBC
	// OutsideCA: beyond edge CA only.
	OutsideCA
	// BeyondA: in the exterior cone of vertex A, beyond both AB and CA.
	BeyondA
	// BeyondB: in the exterior cone of vertex B, beyond both AB and BC.
	BeyondB
	// BeyondC: in the exterior cone of vertex C, beyond both BC and CA.
	BeyondC
)

var regionNames = [...]string{
	RegionUnknown: "Unknown",
	Inside:        "Inside",
	OutsideAB:     "OutsideAB",
	OutsideBC:     "OutsideBC",
	OutsideCA:     "OutsideCA",
	BeyondA:       "BeyondA",
	BeyondB:       "BeyondB",
	BeyondC:       "BeyondC",
}

// String returns the region name.
func (r Region) String() string {
	if r >= 0 && int(r) < len(regionNames) {
		return regionNames[r]
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Region classifies p by which edges it lies inside of. A point exactly on an
// edge line counts as outside that edge.
func (t Triangle) Region(p Vec2) Region {
	ab := Winding(p, t.A, t.B) > 0
	bc := Winding(p, t.B, t.C) > 0
	ca := Winding(p, t.C, t.A) > 0

	switch {
	case ab && bc && ca:
		return Inside
	case bc && ca:
		return OutsideAB
	case ab && ca:
		return OutsideBC
	case ab && bc:
		return OutsideCA
	case bc:
		return BeyondA
	case ca:
		return BeyondB
	case ab:
		return BeyondC
	default:
		return RegionUnknown
	}
}

// Confine moves p onto the closed triangle:
//
//   - Inside: p is returned unchanged.
//   - OutsideAB, OutsideBC, OutsideCA: p slides toward the opposite vertex
//     until it meets the violated edge.
//   - BeyondA, BeyondB, BeyondC: p snaps to that vertex.
//
// Confine is idempotent. A NaN point is returned unchanged. Confine panics
// with an error wrapping ErrInvalidTriangle if t is not valid.
func (t Triangle) Confine(p Vec2) Vec2 {
	t.mustValidate()
	switch t.Region(p) {
	case Inside:
		return p
	case OutsideAB:
		return p.Lerp(t.C, IntersectionParam(p, t.C, t.A, t.B))
	case OutsideBC:
		return p.Lerp(t.A, IntersectionParam(p, t.A, t.B, t.C))
	case OutsideCA:
		return p.Lerp(t.B, IntersectionParam(p, t.B, t.C, t.A))
	case BeyondA:
		return t.A
	case BeyondB:
		return t.B
	case BeyondC:
		return t.C
	default:
		return p
	}
}

// EquilateralTriangle returns the triangle inscribed in a circle of the given
// radius around center, with A at angle deg (degrees, counter-clockwise from
// the positive X axis as seen on screen) and B, C following at +120° and
// +240°.
func EquilateralTriangle(center Vec2, radius, deg float64) (Triangle, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Triangle{}, fmt.Errorf("%w: radius %v", ErrInvalidTriangle, radius)
	}
	var v [3]Vec2
	for i := range v {
		rad := (deg + 120*float64(i)) * math.Pi / 180
		v[i] = Vec2{
			X: center.X + radius*math.Cos(rad),
			Y: center.Y - radius*math.Sin(rad),
		}
	}
	return NewTriangle(v[0], v[1], v[2])
}
