package colorwheel

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/colorwheel/colorspace"
	"github.com/gogpu/colorwheel/geom"
)

// ErrInvalidGeometry is returned by New when the canvas or ring dimensions
// cannot describe a wheel.
var ErrInvalidGeometry = errors.New("colorwheel: invalid geometry")

// Wheel is the fixed layout of a color wheel picker. It is immutable after
// New and safe for concurrent use.
type Wheel struct {
	size         float64
	center       geom.Vec2
	inner, outer float64
	triangle     float64
	marker       float64
}

// New creates a Wheel. Without options it reproduces the classic 256px
// layout: ring radii 106 and 128, triangle circumradius 90, markers of
// radius 6, centered on the canvas.
func New(opts ...Option) (*Wheel, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !positive(o.size) {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidGeometry, o.size)
	}
	o = o.resolve()

	switch {
	case !o.center.IsFinite():
		return nil, fmt.Errorf("%w: center %v", ErrInvalidGeometry, *o.center)
	case !positive(o.inner) || !positive(o.outer) || o.inner >= o.outer:
		return nil, fmt.Errorf("%w: ring radii %v, %v", ErrInvalidGeometry, o.inner, o.outer)
	case !positive(o.marker):
		return nil, fmt.Errorf("%w: marker radius %v", ErrInvalidGeometry, o.marker)
	}
	if _, err := geom.EquilateralTriangle(*o.center, o.triangle, 0); err != nil {
		return nil, err
	}
	if o.triangle > o.inner {
		return nil, fmt.Errorf("%w: triangle radius %v exceeds inner radius %v",
			ErrInvalidGeometry, o.triangle, o.inner)
	}

	return &Wheel{
		size:     o.size,
		center:   *o.center,
		inner:    o.inner,
		outer:    o.outer,
		triangle: o.triangle,
		marker:   o.marker,
	}, nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// Size returns the side of the square canvas.
func (w *Wheel) Size() float64 { return w.size }

// Center returns the wheel center on the canvas.
func (w *Wheel) Center() geom.Vec2 { return w.center }

// InnerRadius returns the inner radius of the hue ring.
func (w *Wheel) InnerRadius() float64 { return w.inner }

// OuterRadius returns the outer radius of the hue ring.
func (w *Wheel) OuterRadius() float64 { return w.outer }

// TriangleRadius returns the circumradius of the saturation/value triangle.
func (w *Wheel) TriangleRadius() float64 { return w.triangle }

// MarkerRadius returns the radius of the markers.
func (w *Wheel) MarkerRadius() float64 { return w.marker }

// HueRadius returns the radius of the circle the hue marker travels on,
// halfway across the ring.
func (w *Wheel) HueRadius() float64 { return (w.inner + w.outer) / 2 }

// AngleFromOffset returns the screen angle in degrees of the offset (dx, dy)
// from the wheel center, in (-180, 180]. Screen Y grows down, so the angle
// grows counter-clockwise as seen by the user.
func AngleFromOffset(dx, dy float64) float64 {
	// 0-dy keeps a zero dy positive, so the negative X axis is 180, not -180.
	return math.Atan2(0-dy, dx) * 180 / math.Pi
}

// OffsetFromAngle returns the offset from the center of a point at distance
// radius and screen angle deg. It inverts AngleFromOffset for radius > 0.
func OffsetFromAngle(deg, radius float64) geom.Vec2 {
	rad := deg * math.Pi / 180
	return geom.V2(radius*math.Cos(rad), -radius*math.Sin(rad))
}

// Triangle returns the saturation/value triangle for hue: the hue vertex A
// points at hue, the black vertex B and the white vertex C follow at +120°
// and +240°.
func (w *Wheel) Triangle(hue float64) geom.Triangle {
	var v [3]geom.Vec2
	for i := range v {
		v[i] = w.center.Add(OffsetFromAngle(hue+120*float64(i), w.triangle))
	}
	return geom.Triangle{A: v[0], B: v[1], C: v[2]}
}

// Arrow returns the three points of the open polyline drawn just outside the
// hue vertex, pointing at the selected hue.
func (w *Wheel) Arrow(hue float64) [3]geom.Vec2 {
	tri := w.Triangle(hue)
	tip := OffsetFromAngle(hue, 0.1*w.triangle)
	var out [3]geom.Vec2
	for i, v := range [3]geom.Vec2{tri.B, tri.A, tri.C} {
		out[i] = tri.A.Lerp(v, 0.1).Add(tip)
	}
	return out
}

// HueFromPoint returns the hue selected by pointing at p, in [0, 360).
func (w *Wheel) HueFromPoint(p geom.Vec2) float64 {
	d := p.Sub(w.center)
	return colorspace.Coterminal(AngleFromOffset(d.X, d.Y))
}

// HueMarker is the marker on the hue ring.
type HueMarker struct {
	Angle float64
	Pos   geom.Vec2
}

// SatValMarker is the marker inside the triangle.
type SatValMarker struct {
	Sat, Val float64
	Pos      geom.Vec2
}

// Markers is the placement of a selection on the wheel.
type Markers struct {
	Triangle geom.Triangle
	Hue      HueMarker
	SatVal   SatValMarker
}

// HueMarker returns the hue marker for hue, halfway across the ring.
func (w *Wheel) HueMarker(hue float64) HueMarker {
	return HueMarker{
		Angle: hue,
		Pos:   w.center.Add(OffsetFromAngle(hue, w.HueRadius())),
	}
}

// Markers places the triangle and both markers for sel.
func (w *Wheel) Markers(sel Selection) Markers {
	tri := w.Triangle(sel.Hue)
	return Markers{
		Triangle: tri,
		Hue:      w.HueMarker(sel.Hue),
		SatVal: SatValMarker{
			Sat: sel.Sat,
			Val: sel.Val,
			Pos: geom.PointFromSatVal(sel.Sat, sel.Val, tri),
		},
	}
}

// Target identifies the part of the picker a pointer acts on.
type Target int

const (
	// TargetNone: the pointer is on neither the ring nor the triangle.
	TargetNone Target = iota
	// TargetHue: the pointer moves the hue marker.
	TargetHue
	// TargetSatVal: the pointer moves the saturation/value marker.
	TargetSatVal
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetNone:
		return "None"
	case TargetHue:
		return "Hue"
	case TargetSatVal:
		return "SatVal"
	default:
		return fmt.Sprintf("Target(%d)", int(t))
	}
}

// Hit reports what a press at p starts dragging when no marker is under the
// pointer: anything beyond the inner radius drags the hue, anything strictly
// inside the current triangle drags saturation and value.
//
// The ring test has no outer bound, so presses in the canvas corners still
// rotate the hue.
func (w *Wheel) Hit(p geom.Vec2, m Markers) Target {
	switch {
	case w.center.Distance(p) > w.inner:
		return TargetHue
	case m.Triangle.Contains(p):
		return TargetSatVal
	default:
		return TargetNone
	}
}

// MarkerAt returns the marker under p, if any. The hue marker wins when both
// are within reach.
func (w *Wheel) MarkerAt(p geom.Vec2, m Markers) Target {
	switch {
	case p.Distance(m.Hue.Pos) < w.marker:
		return TargetHue
	case p.Distance(m.SatVal.Pos) < w.marker:
		return TargetSatVal
	default:
		return TargetNone
	}
}

// Drag moves the marker identified by target to p and returns the updated
// selection. A hue drag keeps saturation and value; a saturation/value drag
// confines p to the triangle of the current hue. Alpha is never changed.
func (w *Wheel) Drag(sel Selection, target Target, p geom.Vec2) Selection {
	switch target {
	case TargetHue:
		sel.Hue = w.HueFromPoint(p)
	case TargetSatVal:
		sel.Sat, sel.Val = geom.SatValFromPoint(p, w.Triangle(sel.Hue))
	}
	return sel
}

// Press handles a primary button press at p. If active names a marker (the
// one under the pointer while hovering) that marker is dragged; otherwise
// the press is hit-tested against the ring and the triangle. It returns the
// updated selection and the target that subsequent drags should use.
func (w *Wheel) Press(sel Selection, active Target, p geom.Vec2) (Selection, Target) {
	target := active
	if target == TargetNone {
		target = w.Hit(p, w.Markers(sel))
	}
	Logger().Debug("colorwheel: press", "x", p.X, "y", p.Y, "target", target.String())
	return w.Drag(sel, target, p), target
}
