package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/colorwheel"
	"github.com/gogpu/colorwheel/colorspace"
	"github.com/gogpu/colorwheel/geom"
)

// ErrInvalidOption is returned when a draw option cannot be honored.
var ErrInvalidOption = errors.New("render: invalid option")

// Marker outline widths: a wide outer stroke under a narrower inner one.
const (
	outerStroke = 2.1
	innerStroke = 1.9
	arrowStroke = 3
)

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Draw renders w with sel selected and returns the drawing context. The
// canvas is w.Size() pixels square, plus the caption strip when enabled.
func Draw(w *colorwheel.Wheel, sel colorwheel.Selection, opts ...Option) (*gg.Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.caption && !(o.captionSize > 0) {
		return nil, fmt.Errorf("%w: caption size %v", ErrInvalidOption, o.captionSize)
	}

	size := int(math.Ceil(w.Size()))
	height := size
	if o.caption {
		height += captionHeight(o.captionSize)
	}
	dc := gg.NewContext(size, height)
	if o.background.A > 0 {
		dc.ClearWithColor(o.background)
	}

	m := w.Markers(sel)
	steps := []struct {
		name string
		draw func(*gg.Context, *colorwheel.Wheel, colorwheel.Markers) error
	}{
		{"ring", drawRing},
		{"shadow", drawShadow},
		{"arrow", drawArrow},
		{"triangle", drawTriangle},
		{"markers", drawMarkers},
	}
	for _, s := range steps {
		if err := s.draw(dc, w, m); err != nil {
			return nil, fmt.Errorf("render: %s: %w", s.name, err)
		}
	}

	if o.caption {
		if err := drawCaption(dc, sel, float64(size), o.captionSize); err != nil {
			return nil, fmt.Errorf("render: caption: %w", err)
		}
	}

	colorwheel.Logger().Debug("render: wheel drawn",
		"width", dc.Width(), "height", dc.Height(), "hue", sel.Hue, "hex", sel.Hex())
	return dc, nil
}

// SavePNG draws the preview and writes it to path.
func SavePNG(path string, w *colorwheel.Wheel, sel colorwheel.Selection, opts ...Option) error {
	dc, err := Draw(w, sel, opts...)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// EncodePNG draws the preview and writes it to out as PNG.
func EncodePNG(out io.Writer, w *colorwheel.Wheel, sel colorwheel.Selection, opts ...Option) error {
	dc, err := Draw(w, sel, opts...)
	if err != nil {
		return err
	}
	return dc.EncodePNG(out)
}

func captionHeight(pt float64) int {
	return int(math.Ceil(pt * 2.2))
}

func hueColor(hue float64) gg.RGBA {
	r, g, b := colorspace.RGBFromHSV(hue, 1, 1)
	return gg.RGB(r, g, b)
}

// drawRing fills the outer disc with the hue of each pixel's angle. The
// inner part is covered by the shadow afterwards.
func drawRing(dc *gg.Context, w *colorwheel.Wheel, _ colorwheel.Markers) error {
	c := w.Center()
	dc.SetFillBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		return hueColor(AngleAt(c, x, y))
	}).WithName("hue-ring"))
	dc.DrawCircle(c.X, c.Y, w.OuterRadius())
	return dc.Fill()
}

// AngleAt returns the hue shown by the ring at pixel (x, y) around center.
func AngleAt(center geom.Vec2, x, y float64) float64 {
	return colorwheel.AngleFromOffset(x-center.X, y-center.Y)
}

func drawShadow(dc *gg.Context, w *colorwheel.Wheel, _ colorwheel.Markers) error {
	c := w.Center()
	shadow := gg.NewRadialGradientBrush(c.X, c.Y, 0, w.InnerRadius()).
		AddColorStop(0, gg.Hex("#444")).
		AddColorStop(0.9, gg.Hex("#333")).
		AddColorStop(1, gg.Hex("#111"))
	dc.SetFillBrush(shadow)
	dc.DrawCircle(c.X, c.Y, w.InnerRadius())
	return dc.Fill()
}

func drawArrow(dc *gg.Context, w *colorwheel.Wheel, m colorwheel.Markers) error {
	pts := w.Arrow(m.Hue.Angle)
	dc.MoveTo(pts[0].X, pts[0].Y)
	dc.LineTo(pts[1].X, pts[1].Y)
	dc.LineTo(pts[2].X, pts[2].Y)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineWidth(arrowStroke)
	dc.SetStrokeBrush(gg.Solid(hueColor(m.Hue.Angle)))
	return dc.Stroke()
}

// drawTriangle shades every pixel of the triangle with the color it selects.
func drawTriangle(dc *gg.Context, _ *colorwheel.Wheel, m colorwheel.Markers) error {
	tri := m.Triangle
	hue := m.Hue.Angle
	dc.SetFillBrush(gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		sat, val := geom.SatValFromPoint(geom.V2(x, y), tri)
		r, g, b := colorspace.RGBFromHSV(hue, sat, val)
		return gg.RGB(r, g, b)
	}).WithName("sat-val-triangle"))
	dc.MoveTo(tri.A.X, tri.A.Y)
	dc.LineTo(tri.B.X, tri.B.Y)
	dc.LineTo(tri.C.X, tri.C.Y)
	dc.ClosePath()
	return dc.Fill()
}

// drawMarkers outlines the hue marker white over black and the
// saturation/value marker black over white.
func drawMarkers(dc *gg.Context, w *colorwheel.Wheel, m colorwheel.Markers) error {
	r, g, b := colorspace.RGBFromHSL(m.Hue.Angle, 1, 0.5)
	if err := marker(dc, m.Hue.Pos, w.MarkerRadius(), gg.RGB(r, g, b), gg.White, gg.Black); err != nil {
		return err
	}
	r, g, b = colorspace.RGBFromHSV(m.Hue.Angle, m.SatVal.Sat, m.SatVal.Val)
	return marker(dc, m.SatVal.Pos, w.MarkerRadius(), gg.RGB(r, g, b), gg.Black, gg.White)
}

func marker(dc *gg.Context, p geom.Vec2, radius float64, fill, outer, inner gg.RGBA) error {
	dc.DrawCircle(p.X, p.Y, radius)
	dc.SetFillBrush(gg.Solid(fill))
	if err := dc.FillPreserve(); err != nil {
		return err
	}
	dc.SetLineWidth(outerStroke)
	dc.SetStrokeBrush(gg.Solid(outer))
	if err := dc.StrokePreserve(); err != nil {
		return err
	}
	dc.SetLineWidth(innerStroke)
	dc.SetStrokeBrush(gg.Solid(inner))
	return dc.Stroke()
}

func drawCaption(dc *gg.Context, sel colorwheel.Selection, top, pt float64) error {
	src, err := goRegular()
	if err != nil {
		return err
	}
	dc.SetFont(src.Face(pt))
	dc.SetRGB(0.85, 0.85, 0.85)
	mid := top + float64(captionHeight(pt))/2
	dc.DrawStringAnchored(sel.Hex()+"  "+sel.CSS(), float64(dc.Width())/2, mid, 0.5, 0.5)
	return nil
}
