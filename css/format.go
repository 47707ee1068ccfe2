package css

import (
	"math"
	"strconv"
	"strings"
)

// formatNum prints x with at most six decimals and no trailing zeros.
func formatNum(x float64) string {
	x = math.Round(x*1e6) / 1e6
	if x == 0 {
		x = 0 // drop negative zero
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// FormatFunc formats c in functional notation using the family of c:
// "rgb(255,0,0)", "hsl(120,50%,50%)" or "hsv(120,50%,100%)". The alpha form
// ("rgba(...)", "hsla(...)", "hsva(...)") is used unless alpha is exactly 1.
// RGB channels are rounded to bytes; hue is printed in degrees as given.
func FormatFunc(c Color) string {
	if _, ok := conversions[[2]Family{c.Space.Family, c.Space.Family}]; !ok {
		c = Fallback
	}
	ch := c.Channels
	parts := make([]string, 3, 4)
	if c.Space.Family == RGB {
		for i := range 3 {
			parts[i] = strconv.Itoa(int(toByte(ch[i])))
		}
	} else {
		parts[0] = formatNum(ch[0])
		parts[1] = formatNum(ch[1]*100) + "%"
		parts[2] = formatNum(ch[2]*100) + "%"
	}

	name := c.Space.Family.String()
	if ch[3] != 1 {
		name += "a"
		parts = append(parts, formatNum(ch[3]))
	}
	return name + "(" + strings.Join(parts, ",") + ")"
}
