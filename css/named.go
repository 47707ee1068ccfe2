package css

import (
	"image/color"
	"sort"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// named maps lowercase keywords to colors. It holds the SVG 1.1 keywords
// from colornames plus rebeccapurple from CSS Color 4.
var named = func() map[string]color.RGBA {
	m := make(map[string]color.RGBA, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = c
	}
	if _, ok := m["rebeccapurple"]; !ok {
		m["rebeccapurple"] = color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff}
	}
	return m
}()

// foldName normalizes a keyword for lookup. A Caser is stateful, so a new one
// is created per call.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NamedHex returns the lowercase #rrggbb code of a color keyword.
func NamedHex(name string) (string, error) {
	c, ok := named[foldName(name)]
	if !ok {
		return "", parseErr(NotNamedColor, name, "unrecognized color keyword")
	}
	return formatBytes(c.R, c.G, c.B), nil
}

// ParseNamed parses a color keyword into an opaque RGB color.
func ParseNamed(name string) (Color, error) {
	c, ok := named[foldName(name)]
	if !ok {
		return Color{}, parseErr(NotNamedColor, name, "unrecognized color keyword")
	}
	return NewRGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
}

// Names returns all known color keywords in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for name := range named {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
