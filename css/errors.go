package css

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a CSS color string was rejected.
type ErrorKind int

const (
	// NotNamedColor means the input is not a known color keyword.
	NotNamedColor ErrorKind = iota
	// NotHexColor means the input is not a #rgb, #rgba, #rrggbb or #rrggbbaa color.
	NotHexColor
	// NotFunctionalColor means the input does not have the shape name(a, b, c[, d]).
	NotFunctionalColor
	// ArgumentError means the input is functional notation with the wrong
	// function name, argument count or argument types.
	ArgumentError
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case NotNamedColor:
		return "NotNamedColor"
	case NotHexColor:
		return "NotHexColor"
	case NotFunctionalColor:
		return "NotFunctionalColor"
	case ArgumentError:
		return "ArgumentError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors. A *ParseError unwraps to the sentinel of its kind, so
// callers can use errors.Is(err, css.ErrNotHexColor).
var (
	ErrNotNamedColor      = errors.New("css: not a named color")
	ErrNotHexColor        = errors.New("css: not a hex color")
	ErrNotFunctionalColor = errors.New("css: not a functional color")
	ErrArgument           = errors.New("css: invalid argument")

	// ErrUnsupportedConversion is returned when no conversion exists between
	// two color spaces. It indicates a programming error in the caller.
	ErrUnsupportedConversion = errors.New("css: unsupported conversion")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case NotNamedColor:
		return ErrNotNamedColor
	case NotHexColor:
		return ErrNotHexColor
	case NotFunctionalColor:
		return ErrNotFunctionalColor
	default:
		return ErrArgument
	}
}

// ParseError reports a CSS color string that could not be parsed in one form.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("css: %s: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("css: %s: %q: %s", e.Kind, e.Input, e.Msg)
}

// Unwrap returns the sentinel error matching e.Kind.
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func parseErr(kind ErrorKind, input, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Input: input, Msg: fmt.Sprintf(format, args...)}
}
