package css

import (
	"fmt"
	"strings"

	"github.com/gogpu/colorwheel/colorspace"
)

// Family is a color model independent of alpha presence.
type Family int

const (
	RGB Family = iota
	HSL
	HSV
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case RGB:
		return "rgb"
	case HSL:
		return "hsl"
	case HSV:
		return "hsv"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Space is a color family plus whether an alpha channel is carried.
type Space struct {
	Family Family
	Alpha  bool
}

// Common spaces.
var (
	SpaceRGB  = Space{Family: RGB}
	SpaceRGBA = Space{Family: RGB, Alpha: true}
	SpaceHSL  = Space{Family: HSL}
	SpaceHSLA = Space{Family: HSL, Alpha: true}
	SpaceHSV  = Space{Family: HSV}
	SpaceHSVA = Space{Family: HSV, Alpha: true}
)

// String returns the CSS function name of the space, e.g. "rgba".
func (s Space) String() string {
	if s.Alpha {
		return s.Family.String() + "a"
	}
	return s.Family.String()
}

// Channels returns the number of channels a value in s carries: 3 or 4.
func (s Space) Channels() int {
	if s.Alpha {
		return 4
	}
	return 3
}

// ParseSpace maps a function name such as "rgb", "hsla" or "hsb" to a Space.
// "hsb" and "hsba" are aliases of "hsv" and "hsva".
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(name) {
	case "rgb":
		return SpaceRGB, nil
	case "rgba":
		return SpaceRGBA, nil
	case "hsl":
		return SpaceHSL, nil
	case "hsla":
		return SpaceHSLA, nil
	case "hsv", "hsb":
		return SpaceHSV, nil
	case "hsva", "hsba":
		return SpaceHSVA, nil
	default:
		return Space{}, fmt.Errorf("%w: unknown color space %q", ErrUnsupportedConversion, name)
	}
}

type convertFunc func(a, b, c float64) (float64, float64, float64)

func identity(a, b, c float64) (float64, float64, float64) { return a, b, c }

// conversions is the fixed compatibility table keyed by (from, to) family.
var conversions = map[[2]Family]convertFunc{
	{RGB, RGB}: identity,
	{RGB, HSL}: colorspace.HSLFromRGB,
	{RGB, HSV}: colorspace.HSVFromRGB,
	{HSL, HSL}: identity,
	{HSL, RGB}: colorspace.RGBFromHSL,
	{HSL, HSV}: colorspace.HSVFromHSL,
	{HSV, HSV}: identity,
	{HSV, RGB}: colorspace.RGBFromHSV,
	{HSV, HSL}: colorspace.HSLFromHSV,
}

// Convert converts the channels ch, expressed in space from, to space to.
//
// The color channels go through the table entry for the two families. Alpha
// is handled independently: absent to absent is left alone, present to absent
// is dropped, absent to present appends 1, present to present is carried over
// unconverted.
//
// len(ch) must equal from.Channels(). The result has to.Channels() values.
func Convert(ch []float64, from, to Space) ([]float64, error) {
	fn, ok := conversions[[2]Family{from.Family, to.Family}]
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	if len(ch) != from.Channels() {
		return nil, fmt.Errorf("%w: %s expects %d channels, got %d", ErrArgument, from, from.Channels(), len(ch))
	}

	a, b, c := fn(ch[0], ch[1], ch[2])
	out := make([]float64, 3, 4)
	out[0], out[1], out[2] = a, b, c

	switch {
	case from.Alpha && to.Alpha:
		out = append(out, ch[3])
	case to.Alpha:
		out = append(out, 1)
	}
	return out, nil
}
