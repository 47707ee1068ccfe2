package colorwheel

import "github.com/gogpu/colorwheel/geom"

// Option configures a Wheel during creation.
//
// Example:
//
//	// Default 256px wheel
//	w, err := colorwheel.New()
//
//	// 512px wheel with a thinner ring
//	w, err := colorwheel.New(colorwheel.WithSize(512), colorwheel.WithRadii(236, 256))
type Option func(*wheelOptions)

// wheelOptions holds optional configuration for Wheel creation. Zero radii
// and a nil center are derived from size when the Wheel is built.
type wheelOptions struct {
	size         float64
	center       *geom.Vec2
	inner, outer float64
	triangle     float64
	marker       float64
}

// Layout of the classic 256px widget, as fractions of the canvas size.
const (
	DefaultSize         = 256
	DefaultMarkerRadius = 6

	outerRadiusRatio    = 0.5
	innerRadiusRatio    = 53.0 / 128
	triangleRadiusRatio = 45.0 / 128
)

// defaultOptions returns the default wheel options.
func defaultOptions() wheelOptions {
	return wheelOptions{
		size:   DefaultSize,
		marker: DefaultMarkerRadius,
	}
}

// resolve fills in the radii and center that were not set explicitly.
func (o wheelOptions) resolve() wheelOptions {
	if o.center == nil {
		c := geom.V2(o.size/2, o.size/2)
		o.center = &c
	}
	if o.outer == 0 {
		o.outer = o.size * outerRadiusRatio
	}
	if o.inner == 0 {
		o.inner = o.size * innerRadiusRatio
	}
	if o.triangle == 0 {
		o.triangle = o.size * triangleRadiusRatio
	}
	return o
}

// WithSize sets the side of the square canvas in pixels. Radii that are not
// set explicitly scale with it.
func WithSize(size float64) Option {
	return func(o *wheelOptions) {
		o.size = size
	}
}

// WithCenter moves the wheel center. The default is the canvas center.
func WithCenter(c geom.Vec2) Option {
	return func(o *wheelOptions) {
		o.center = &c
	}
}

// WithRadii sets the inner and outer radius of the hue ring.
func WithRadii(inner, outer float64) Option {
	return func(o *wheelOptions) {
		o.inner = inner
		o.outer = outer
	}
}

// WithTriangleRadius sets the circumradius of the saturation/value triangle.
func WithTriangleRadius(r float64) Option {
	return func(o *wheelOptions) {
		o.triangle = r
	}
}

// WithMarkerRadius sets the radius of both markers, which is also the
// distance within which a pointer grabs a marker.
func WithMarkerRadius(r float64) Option {
	return func(o *wheelOptions) {
		o.marker = r
	}
}
