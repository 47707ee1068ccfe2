package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gogpu/colorwheel"
	"github.com/gogpu/colorwheel/geom"
)

func newWheel(t *testing.T) *colorwheel.Wheel {
	t.Helper()
	w, err := colorwheel.New()
	if err != nil {
		t.Fatalf("colorwheel.New() error = %v", err)
	}
	return w
}

// pixel returns the straight-alpha color at p in [0, 1].
func pixel(img image.Image, p geom.Vec2) (r, g, b, a float64) {
	cr, cg, cb, ca := img.At(int(p.X), int(p.Y)).RGBA()
	if ca == 0 {
		return 0, 0, 0, 0
	}
	return float64(cr) / float64(ca), float64(cg) / float64(ca), float64(cb) / float64(ca), float64(ca) / 0xffff
}

func near(got, want float64) bool {
	return math.Abs(got-want) < 0.03
}

func TestDrawSize(t *testing.T) {
	w := newWheel(t)
	sel := colorwheel.Selection{Hue: 30, Sat: 0.5, Val: 0.5, Alpha: 1}

	dc, err := Draw(w, sel)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if dc.Width() != 256 || dc.Height() != 256 {
		t.Errorf("size = %dx%d, want 256x256", dc.Width(), dc.Height())
	}

	dc, err = Draw(w, sel, WithCaption(true))
	if err != nil {
		t.Fatalf("Draw(WithCaption) error = %v", err)
	}
	if want := 256 + captionHeight(DefaultCaptionSize); dc.Height() != want {
		t.Errorf("captioned height = %d, want %d", dc.Height(), want)
	}
}

func TestDrawPixels(t *testing.T) {
	w := newWheel(t)
	sel := colorwheel.Selection{Hue: 0, Sat: 1, Val: 1, Alpha: 1}
	dc, err := Draw(w, sel)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	img := dc.Image()
	c := w.Center()

	tests := []struct {
		name    string
		p       geom.Vec2
		r, g, b float64
	}{
		// Ring at hue 120 and 240, away from the hue marker.
		{"ring green", c.Add(colorwheel.OffsetFromAngle(120, w.HueRadius())), 0, 1, 0},
		{"ring blue", c.Add(colorwheel.OffsetFromAngle(240, w.HueRadius())), 0, 0, 1},
		// The saturation/value marker sits on the hue vertex, filled red.
		{"sat/val marker", w.Markers(sel).SatVal.Pos, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := pixel(img, tt.p)
			if !near(a, 1) {
				t.Fatalf("alpha at %v = %v, want opaque", tt.p, a)
			}
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) {
				t.Errorf("pixel at %v = (%.3f, %.3f, %.3f), want (%v, %v, %v)", tt.p, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestDrawTriangleBlackCorner(t *testing.T) {
	w := newWheel(t)
	dc, err := Draw(w, colorwheel.Selection{Hue: 0, Sat: 0, Val: 1, Alpha: 1})
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	// A tenth of the way from the black vertex to the center.
	p := w.Triangle(0).B.Lerp(w.Center(), 0.1)
	r, g, b, _ := pixel(dc.Image(), p)
	if r > 0.1 || g > 0.1 || b > 0.1 {
		t.Errorf("pixel near black vertex = (%.3f, %.3f, %.3f), want near black", r, g, b)
	}
}

func TestDrawShadow(t *testing.T) {
	w := newWheel(t)
	dc, err := Draw(w, colorwheel.Selection{Hue: 0, Sat: 0.5, Val: 0.5, Alpha: 1})
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	// Left of the triangle, inside the ring: the dark inner disc.
	r, g, b, a := pixel(dc.Image(), geom.V2(40, 128))
	if !near(a, 1) || r > 0.3 || !near(r, g) || !near(g, b) {
		t.Errorf("shadow pixel = (%.3f, %.3f, %.3f, %.3f), want dark opaque gray", r, g, b, a)
	}
}

func TestDrawBackground(t *testing.T) {
	w := newWheel(t)
	sel := colorwheel.Selection{Hue: 0, Sat: 0, Val: 1, Alpha: 1}

	dc, err := Draw(w, sel)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := pixel(dc.Image(), geom.V2(1, 1)); a != 0 {
		t.Errorf("corner alpha = %v, want transparent by default", a)
	}

	dc, err = Draw(w, sel, WithBackground(gg.White))
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b, a := pixel(dc.Image(), geom.V2(1, 1)); !near(r, 1) || !near(g, 1) || !near(b, 1) || !near(a, 1) {
		t.Errorf("corner = (%v, %v, %v, %v), want white", r, g, b, a)
	}
}

func TestDrawInvalidCaptionSize(t *testing.T) {
	w := newWheel(t)
	_, err := Draw(w, colorwheel.Selection{}, WithCaption(true), WithCaptionSize(0))
	if !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Draw() error = %v, want ErrInvalidOption", err)
	}
}

func TestEncodePNG(t *testing.T) {
	w := newWheel(t)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, w, colorwheel.SelectionFromCSS("teal"), WithCaption(true)); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256+captionHeight(DefaultCaptionSize) {
		t.Errorf("bounds = %v", b)
	}
}

func TestSavePNG(t *testing.T) {
	w := newWheel(t)
	path := filepath.Join(t.TempDir(), "wheel.png")
	if err := SavePNG(path, w, colorwheel.SelectionFromCSS("#ff8800")); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}
}

func TestAngleAt(t *testing.T) {
	c := geom.V2(10, 10)
	if got := AngleAt(c, 10, 0); math.Abs(got-90) > 1e-12 {
		t.Errorf("AngleAt above center = %v, want 90", got)
	}
	if got := AngleAt(c, 20, 10); got != 0 {
		t.Errorf("AngleAt right of center = %v, want 0", got)
	}
}
