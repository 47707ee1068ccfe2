package css

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/colorwheel/colorspace"
)

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// ParseHex parses "#rgb", "#rgba", "#rrggbb" or "#rrggbbaa". Short forms double
// every digit. The 4 and 8 digit forms produce a color with alpha.
func ParseHex(s string) (Color, error) {
	in := strings.TrimSpace(s)
	if !strings.HasPrefix(in, "#") {
		return Color{}, parseErr(NotHexColor, s, "missing '#'")
	}
	digits := in[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, parseErr(NotHexColor, s, "invalid hex digit %q", digits[i])
		}
	}

	var pairs []string
	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			pairs = append(pairs, strings.Repeat(digits[i:i+1], 2))
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			pairs = append(pairs, digits[i:i+2])
		}
	default:
		return Color{}, parseErr(NotHexColor, s, "want 3, 4, 6 or 8 digits, got %d", len(digits))
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range pairs {
		n, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Color{}, parseErr(NotHexColor, s, "%v", err)
		}
		ch[i] = float64(n) / 255
	}
	return Color{Space: Space{Family: RGB, Alpha: len(pairs) == 4}, Channels: ch}, nil
}

// toByte clamps x to [0, 1] and rounds it to the nearest integer in [0, 255].
func toByte(x float64) uint8 {
	return uint8(math.Round(colorspace.Clamp01(x) * 255))
}

const hexDigits = "0123456789abcdef"

func formatBytes(b ...uint8) string {
	var sb strings.Builder
	sb.Grow(1 + 2*len(b))
	sb.WriteByte('#')
	for _, v := range b {
		sb.WriteByte(hexDigits[v>>4])
		sb.WriteByte(hexDigits[v&0x0f])
	}
	return sb.String()
}

// FormatHex formats c as lowercase "#rrggbb", or "#rrggbbaa" when alpha is
// below 1. Channels are clamped to [0, 1] and rounded, not truncated. Colors
// in other families are converted to RGB first.
func FormatHex(c Color) string {
	rgb, err := c.To(SpaceRGBA)
	if err != nil {
		rgb = Fallback
	}
	r, g, b, a := rgb.Channels[0], rgb.Channels[1], rgb.Channels[2], rgb.Channels[3]
	if a < 1 {
		return formatBytes(toByte(r), toByte(g), toByte(b), toByte(a))
	}
	return formatBytes(toByte(r), toByte(g), toByte(b))
}
