package colorwheel

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/colorwheel/geom"
)

func TestNewOptions(t *testing.T) {
	w := newWheel(t, WithSize(512))
	if w.InnerRadius() != 212 || w.OuterRadius() != 256 || w.TriangleRadius() != 180 {
		t.Errorf("radii = %v, %v, %v, want 212, 256, 180", w.InnerRadius(), w.OuterRadius(), w.TriangleRadius())
	}
	if w.Center() != geom.V2(256, 256) {
		t.Errorf("Center() = %v, want (256, 256)", w.Center())
	}

	w = newWheel(t, WithCenter(geom.V2(10, 20)), WithRadii(50, 60), WithTriangleRadius(40), WithMarkerRadius(3))
	if w.Center() != geom.V2(10, 20) {
		t.Errorf("Center() = %v, want (10, 20)", w.Center())
	}
	if w.InnerRadius() != 50 || w.OuterRadius() != 60 || w.TriangleRadius() != 40 || w.MarkerRadius() != 3 {
		t.Errorf("unexpected geometry %+v", *w)
	}
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero size", []Option{WithSize(0)}, ErrInvalidGeometry},
		{"nan size", []Option{WithSize(math.NaN())}, ErrInvalidGeometry},
		{"inverted ring", []Option{WithRadii(120, 100)}, ErrInvalidGeometry},
		{"empty ring", []Option{WithRadii(100, 100)}, ErrInvalidGeometry},
		{"negative inner", []Option{WithRadii(-1, 100)}, ErrInvalidGeometry},
		{"zero marker", []Option{WithMarkerRadius(0)}, ErrInvalidGeometry},
		{"nan center", []Option{WithCenter(geom.V2(math.NaN(), 0))}, ErrInvalidGeometry},
		{"negative triangle", []Option{WithTriangleRadius(-1)}, geom.ErrInvalidTriangle},
		{"infinite triangle", []Option{WithTriangleRadius(math.Inf(1))}, geom.ErrInvalidTriangle},
		{"triangle outside ring", []Option{WithTriangleRadius(110)}, ErrInvalidGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
			if w != nil {
				t.Error("New() returned a wheel along with an error")
			}
		})
	}
}
