package render

import "github.com/gogpu/gg"

// Option configures Draw.
//
// Example:
//
//	dc, err := render.Draw(w, sel, render.WithCaption(true), render.WithBackground(gg.White))
type Option func(*drawOptions)

type drawOptions struct {
	caption     bool
	captionSize float64
	background  gg.RGBA
}

// DefaultCaptionSize is the caption font size in points.
const DefaultCaptionSize = 13

func defaultOptions() drawOptions {
	return drawOptions{
		captionSize: DefaultCaptionSize,
		background:  gg.Transparent,
	}
}

// WithCaption adds a strip below the wheel showing the selection as hex and
// CSS text.
func WithCaption(on bool) Option {
	return func(o *drawOptions) {
		o.caption = on
	}
}

// WithCaptionSize sets the caption font size in points.
func WithCaptionSize(pt float64) Option {
	return func(o *drawOptions) {
		o.captionSize = pt
	}
}

// WithBackground fills the canvas before drawing. The default is transparent.
func WithBackground(c gg.RGBA) Option {
	return func(o *drawOptions) {
		o.background = c
	}
}
