package colorwheel

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/colorwheel/colorspace"
	"github.com/gogpu/colorwheel/css"
)

// Selection is the color held by a picker: hue in degrees, saturation, value
// and alpha in [0, 1].
type Selection struct {
	Hue, Sat, Val, Alpha float64
}

// SelectionFromCSS returns the selection for any CSS color text. Unparsable
// text selects the mid-gray fallback.
func SelectionFromCSS(text string) Selection {
	hsva := css.ParseHSV(text)
	return Selection{Hue: hsva[0], Sat: hsva[1], Val: hsva[2], Alpha: hsva[3]}
}

// Color returns the selection as an HSVA color.
func (s Selection) Color() css.Color {
	return css.NewHSVA(s.Hue, s.Sat, s.Val, s.Alpha)
}

// RGBA returns red, green, blue and alpha in [0, 1].
func (s Selection) RGBA() (r, g, b, a float64) {
	r, g, b = colorspace.RGBFromHSV(s.Hue, s.Sat, s.Val)
	return r, g, b, s.Alpha
}

// Hex returns "#rrggbb", or "#rrggbbaa" when alpha is below 1.
func (s Selection) Hex() string {
	return css.FormatHex(s.Color())
}

// CSS returns "rgb(r,g,b)", or "rgba(r,g,b,a)" when alpha is not 1.
func (s Selection) CSS() string {
	r, g, b, a := s.RGBA()
	return css.FormatFunc(css.NewRGBA(r, g, b, a))
}

// TextFields are the values shown in the picker's text inputs.
type TextFields struct {
	Hex   string
	Hue   int // degrees, [0, 360)
	Sat   int // percent
	Val   int // percent
	Alpha int // percent
}

// Fields returns the text input values for s.
func (s Selection) Fields() TextFields {
	return TextFields{
		Hex:   s.Hex(),
		Hue:   int(colorspace.Coterminal(math.Round(s.Hue))),
		Sat:   percent(s.Sat),
		Val:   percent(s.Val),
		Alpha: percent(s.Alpha),
	}
}

func percent(x float64) int {
	return int(math.Round(x * 100))
}

// WithHex applies text typed into the hex input. The leading "#" is
// optional. Text that is not a 3, 4, 6 or 8 digit hex code leaves s
// unchanged and reports false.
func (s Selection) WithHex(text string) (Selection, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "#") {
		text = "#" + text
	}
	c, err := css.ParseHex(text)
	if err != nil {
		return s, false
	}
	hsv, err := c.To(css.SpaceHSVA)
	if err != nil {
		return s, false
	}
	ch := hsv.Channels
	return Selection{Hue: colorspace.Coterminal(ch[0]), Sat: ch[1], Val: ch[2], Alpha: ch[3]}, true
}

// WithHueText applies text typed into the hue input: up to five decimal
// digits, reduced to [0, 360).
func (s Selection) WithHueText(text string) (Selection, bool) {
	n, ok := digits(text, 5)
	if !ok {
		return s, false
	}
	s.Hue = colorspace.Coterminal(float64(n))
	return s, true
}

// WithSatText applies a saturation percentage: up to three decimal digits,
// clamped to 100.
func (s Selection) WithSatText(text string) (Selection, bool) {
	v, ok := percentText(text)
	if ok {
		s.Sat = v
	}
	return s, ok
}

// WithValText applies a value percentage, see WithSatText.
func (s Selection) WithValText(text string) (Selection, bool) {
	v, ok := percentText(text)
	if ok {
		s.Val = v
	}
	return s, ok
}

// WithAlphaText applies an alpha percentage, see WithSatText.
func (s Selection) WithAlphaText(text string) (Selection, bool) {
	v, ok := percentText(text)
	if ok {
		s.Alpha = v
	}
	return s, ok
}

func percentText(text string) (float64, bool) {
	n, ok := digits(text, 3)
	if !ok {
		return 0, false
	}
	return colorspace.Clamp01(float64(n) / 100), true
}

// digits parses 1 to maxLen ASCII decimal digits, ignoring surrounding space.
func digits(text string, maxLen int) (int, bool) {
	text = strings.TrimSpace(text)
	if len(text) == 0 || len(text) > maxLen {
		return 0, false
	}
	for i := range len(text) {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(text)
	return n, err == nil
}

// ResultKind describes what a picker session edits.
type ResultKind int

const (
	// SingleColor: one color is edited.
	SingleColor ResultKind = iota
	// MultipleColors: several colors are edited at once.
	MultipleColors
	// ToggleLive: one color is edited and applied while the picker is open.
	ToggleLive
)

// String returns the kind name.
func (k ResultKind) String() string {
	switch k {
	case SingleColor:
		return "SingleColor"
	case MultipleColors:
		return "MultipleColors"
	case ToggleLive:
		return "ToggleLive"
	default:
		return "ResultKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Action is how a picker session was closed.
type Action int

const (
	// ActionNone: the session is still open or was dismissed.
	ActionNone Action = iota
	// ActionOK: the user confirmed the color.
	ActionOK
	// ActionCancel: the user cancelled.
	ActionCancel
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionOK:
		return "OK"
	case ActionCancel:
		return "Cancel"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

// ErrMultipleColorsUnsupported is returned by Result.Changed for
// MultipleColors results, whose change detection is not defined.
var ErrMultipleColorsUnsupported = errors.New("colorwheel: change detection for multiple colors is not supported")

// Result is the outcome of a picker session.
type Result struct {
	Kind    ResultKind
	Action  Action
	Value   Selection
	Initial Selection
}

// NewResult starts a session result for initial. Value starts equal to it.
func NewResult(kind ResultKind, initial Selection) Result {
	return Result{Kind: kind, Value: initial, Initial: initial}
}

// Changed reports whether Value differs from Initial. The comparison is
// exact on all four components.
func (r Result) Changed() (bool, error) {
	if r.Kind == MultipleColors {
		return false, ErrMultipleColorsUnsupported
	}
	return r.Value != r.Initial, nil
}
