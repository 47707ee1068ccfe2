// Package colorspace converts between the RGB, HSL and HSV color models.
//
// All channels are float64. Red, green, blue, saturation, value and lightness
// live in [0, 1]; hue is in degrees and may be any real number, it is treated
// as periodic modulo 360.
//
// The functions never clamp and never round. Callers that feed user input
// should clamp the non-hue channels with [Clamp01] first; rounding to bytes is
// a serialization concern handled by the css package.
package colorspace

import "math"

// mod returns n modulo m with the sign of m.
func mod(n, m float64) float64 {
	r := math.Mod(n, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// Coterminal reduces an angle in degrees to its coterminal angle in [0, 360).
// Angles already in range are returned unchanged.
func Coterminal(deg float64) float64 {
	if deg >= 0 && deg < 360 {
		return deg
	}
	r := mod(deg, 360)
	if r == 360 { // -1e-14 rounds up to 360
		return 0
	}
	return r
}

// Clamp01 restricts x to [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// RGBFromHSV converts hue (degrees), saturation and value to red, green, blue.
func RGBFromHSV(h, s, v float64) (r, g, b float64) {
	vs := v * s
	f := func(offset float64) float64 {
		k := mod(offset+h/60, 6)
		return v - vs*math.Max(math.Min(math.Min(k, 4-k), 1), 0)
	}
	return f(5), f(3), f(1)
}

// RGBFromHSL converts hue (degrees), saturation and lightness to red, green, blue.
func RGBFromHSL(h, s, l float64) (r, g, b float64) {
	ls := math.Min(l, 1-l) * s
	f := func(offset float64) float64 {
		k := mod(offset+h/30, 12)
		return l - ls*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
	}
	return f(0), f(8), f(4)
}

// hue computes the hexagonal hue of an RGB triple whose largest channel is max
// and whose chroma is span. The result lies in (-60, 300].
func hue(r, g, b, max, span float64) float64 {
	switch {
	case span == 0:
		return 0
	case max == r:
		return 60 * (g - b) / span
	case max == g:
		return 60 * (2 + (b-r)/span)
	default:
		return 60 * (4 + (r-g)/span)
	}
}

// HSVFromRGB converts red, green, blue to hue (degrees), saturation and value.
// Achromatic input yields hue 0; black yields saturation 0.
func HSVFromRGB(r, g, b float64) (h, s, v float64) {
	v = math.Max(r, math.Max(g, b))
	span := v - math.Min(r, math.Min(g, b))
	if v != 0 {
		s = span / v
	}
	return hue(r, g, b, v, span), s, v
}

// HSLFromRGB converts red, green, blue to hue (degrees), saturation and lightness.
// Saturation is 0 when lightness is 0 or 1.
func HSLFromRGB(r, g, b float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, b))
	span := max - math.Min(r, math.Min(g, b))
	l = max - span/2
	if l != 0 && l != 1 {
		s = (max - l) / math.Min(l, 1-l)
	}
	return hue(r, g, b, max, span), s, l
}

// HSVFromHSL converts HSL to HSV without passing through RGB.
func HSVFromHSL(h, s, l float64) (float64, float64, float64) {
	v := l + s*math.Min(l, 1-l)
	var sv float64
	if v != 0 {
		sv = 2 * (1 - l/v)
	}
	return h, sv, v
}

// HSLFromHSV converts HSV to HSL without passing through RGB.
func HSLFromHSV(h, s, v float64) (float64, float64, float64) {
	l := v * (1 - s/2)
	var sl float64
	if l != 0 && l != 1 {
		sl = (v - l) / math.Min(l, 1-l)
	}
	return h, sl, l
}
