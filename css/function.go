package css

import (
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// funcArg is one numeric argument of a color function.
type funcArg struct {
	value   float64
	percent bool
	degrees bool
}

// tokens wraps the CSS scanner and skips whitespace and comments.
type tokens struct {
	sc *scanner.Scanner
}

func (t tokens) next() *scanner.Token {
	for {
		tok := t.sc.Next()
		if tok.Type != scanner.TokenS && tok.Type != scanner.TokenComment {
			return tok
		}
	}
}

func isChar(tok *scanner.Token, c string) bool {
	return tok.Type == scanner.TokenChar && tok.Value == c
}

// scanFunc splits "name(a, b, c[, d])" into the lowercase function name and
// its numeric arguments. It only checks the shape, not the meaning.
func scanFunc(s string) (string, []funcArg, error) {
	ts := tokens{sc: scanner.New(strings.TrimSpace(s))}

	tok := ts.next()
	if tok.Type != scanner.TokenFunction {
		return "", nil, parseErr(NotFunctionalColor, s, "missing function name")
	}
	name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))

	var args []funcArg
	for {
		tok = ts.next()
		sign := 1.0
		if isChar(tok, "+") || isChar(tok, "-") {
			if tok.Value == "-" {
				sign = -1
			}
			tok = ts.sc.Next() // the sign must be attached to the number
		}

		var arg funcArg
		var text string
		switch tok.Type {
		case scanner.TokenNumber:
			text = tok.Value
		case scanner.TokenPercentage:
			text = strings.TrimSuffix(tok.Value, "%")
			arg.percent = true
		case scanner.TokenDimension:
			lower := strings.ToLower(tok.Value)
			if !strings.HasSuffix(lower, "deg") {
				return "", nil, parseErr(NotFunctionalColor, s, "unsupported unit in %q", tok.Value)
			}
			text = tok.Value[:len(tok.Value)-len("deg")]
			arg.degrees = true
		default:
			return "", nil, parseErr(NotFunctionalColor, s, "expected a number, got %q", tok.Value)
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return "", nil, parseErr(NotFunctionalColor, s, "%v", err)
		}
		arg.value = sign * v
		args = append(args, arg)

		tok = ts.next()
		if isChar(tok, ",") {
			continue
		}
		if isChar(tok, ")") {
			break
		}
		return "", nil, parseErr(NotFunctionalColor, s, "expected ',' or ')', got %q", tok.Value)
	}

	if tok = ts.next(); tok.Type != scanner.TokenEOF {
		return "", nil, parseErr(NotFunctionalColor, s, "trailing input %q", tok.Value)
	}
	if len(args) != 3 && len(args) != 4 {
		return "", nil, parseErr(NotFunctionalColor, s, "want 3 or 4 arguments, got %d", len(args))
	}
	return name, args, nil
}

// ParseFunc parses functional notation: rgb(), rgba(), hsl(), hsla(), hsv(),
// hsva() and the hsb()/hsba() aliases.
//
// RGB channels are byte values (0-255) or percentages. Hue is in degrees,
// either bare or with a "deg" unit. Saturation, lightness and value are
// fractions or percentages. The optional fourth argument is alpha, as a
// fraction or a percentage.
//
// A three-letter function given four arguments is an ArgumentError; a
// four-letter function given three arguments is accepted with alpha 1.
func ParseFunc(s string) (Color, error) {
	name, args, err := scanFunc(s)
	if err != nil {
		return Color{}, err
	}
	space, err := ParseSpace(name)
	if err != nil {
		return Color{}, parseErr(ArgumentError, s, "%q is not a recognized color function", name)
	}
	if len(args) == 4 && !space.Alpha {
		return Color{}, parseErr(ArgumentError, s, "%s takes 3 arguments", name)
	}

	var ch [4]float64
	ch[3] = 1
	for i, a := range args[:3] {
		switch {
		case space.Family == RGB:
			if a.degrees {
				return Color{}, parseErr(ArgumentError, s, "rgb channel %d cannot be an angle", i+1)
			}
			if a.percent {
				ch[i] = a.value / 100
			} else {
				ch[i] = a.value / 255
			}
		case i == 0:
			if a.percent {
				return Color{}, parseErr(ArgumentError, s, "hue cannot be a percentage")
			}
			ch[i] = a.value
		default:
			if a.degrees {
				return Color{}, parseErr(ArgumentError, s, "channel %d cannot be an angle", i+1)
			}
			if a.percent {
				ch[i] = a.value / 100
			} else {
				ch[i] = a.value
			}
		}
	}
	if len(args) == 4 {
		a := args[3]
		if a.degrees {
			return Color{}, parseErr(ArgumentError, s, "alpha cannot be an angle")
		}
		ch[3] = a.value
		if a.percent {
			ch[3] /= 100
		}
	}
	return Color{Space: Space{Family: space.Family, Alpha: len(args) == 4}, Channels: ch}, nil
}
