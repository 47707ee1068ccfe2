// Package css parses and formats CSS color text.
//
// Three textual forms are understood: named keywords ("rebeccapurple"), hex
// colors ("#f80", "#ff880080") and functional notation ("rgb(255, 136, 0)",
// "hsla(30, 100%, 50%, 0.5)", "hsv(30, 1, 1)"). Parsed colors keep the family
// they were written in; use [Color.To] or [Convert] to move between families.
//
// [Parse] reports why text is not a color. [ParseRGB], [ParseHSV] and [Hex6]
// never fail: they fall back to [Fallback] and log a warning through the
// logger configured with colorwheel.SetLogger.
package css

// Color is a parsed or constructed color. Channels holds the three color
// channels in the native ranges of Space.Family followed by alpha. Channels[3]
// is 1 when Space.Alpha is false.
type Color struct {
	Space    Space
	Channels [4]float64
}

// Fallback is the mid-gray returned by the best-effort parsers when no form
// matches.
var Fallback = Color{Space: SpaceRGB, Channels: [4]float64{0.5, 0.5, 0.5, 1}}

// NewRGB returns an opaque RGB color.
func NewRGB(r, g, b float64) Color {
	return Color{Space: SpaceRGB, Channels: [4]float64{r, g, b, 1}}
}

// NewRGBA returns an RGB color with alpha.
func NewRGBA(r, g, b, a float64) Color {
	return Color{Space: SpaceRGBA, Channels: [4]float64{r, g, b, a}}
}

// NewHSL returns an opaque HSL color. h is in degrees.
func NewHSL(h, s, l float64) Color {
	return Color{Space: SpaceHSL, Channels: [4]float64{h, s, l, 1}}
}

// NewHSLA returns an HSL color with alpha.
func NewHSLA(h, s, l, a float64) Color {
	return Color{Space: SpaceHSLA, Channels: [4]float64{h, s, l, a}}
}

// NewHSV returns an opaque HSV color. h is in degrees.
func NewHSV(h, s, v float64) Color {
	return Color{Space: SpaceHSV, Channels: [4]float64{h, s, v, 1}}
}

// NewHSVA returns an HSV color with alpha.
func NewHSVA(h, s, v, a float64) Color {
	return Color{Space: SpaceHSVA, Channels: [4]float64{h, s, v, a}}
}

// Alpha returns the alpha channel.
func (c Color) Alpha() float64 {
	return c.Channels[3]
}

// Values returns the channels as a slice of length c.Space.Channels().
func (c Color) Values() []float64 {
	out := make([]float64, c.Space.Channels())
	copy(out, c.Channels[:])
	return out
}

// To converts c to space s following the alpha rules of [Convert].
func (c Color) To(s Space) (Color, error) {
	out, err := Convert(c.Values(), c.Space, s)
	if err != nil {
		return Color{}, err
	}
	res := Color{Space: s, Channels: [4]float64{out[0], out[1], out[2], 1}}
	if s.Alpha {
		res.Channels[3] = out[3]
	}
	return res, nil
}

// String formats c in functional notation, see [FormatFunc].
func (c Color) String() string {
	return FormatFunc(c)
}
