package css

import (
	"errors"

	"github.com/gogpu/colorwheel/colorspace"
	"github.com/gogpu/colorwheel/internal/logx"
)

// parsers lists the textual forms in the order Parse tries them.
var parsers = []func(string) (Color, error){
	ParseNamed,
	ParseHex,
	ParseFunc,
}

// Parse parses any supported CSS color. Forms are tried in order: named
// keyword, hex, functional notation. The first success wins. If every form
// fails the returned error joins the three *ParseError values.
func Parse(text string) (Color, error) {
	errs := make([]error, 0, len(parsers))
	for _, parse := range parsers {
		c, err := parse(text)
		if err == nil {
			return c, nil
		}
		logx.Get().Debug("css: form rejected", "err", err)
		errs = append(errs, err)
	}
	return Color{}, errors.Join(errs...)
}

// bestEffort parses text and converts it to space to. Unparsable text yields
// Fallback and a warning.
func bestEffort(text string, to Space) Color {
	c, err := Parse(text)
	if err != nil {
		logx.Get().Warn("css: unparsable color, using fallback",
			"input", text, "fallback", FormatHex(Fallback), "err", err)
		c = Fallback
	}
	out, err := c.To(to)
	if err != nil {
		logx.Get().Error("css: conversion failed, using fallback", "to", to.String(), "err", err)
		return Fallback
	}
	return out
}

// ParseRGB returns red, green, blue and alpha for any CSS color text, or the
// mid-gray fallback when the text is not a color.
func ParseRGB(text string) [4]float64 {
	return bestEffort(text, SpaceRGBA).Channels
}

// ParseHSV returns hue, saturation, value and alpha for any CSS color text, or
// the fallback converted to HSV when the text is not a color. The hue is
// reduced to [0, 360).
//
// The fallback is the same mid-gray as ParseRGB, HSV (0, 0, 0.5, 1), rather
// than the (0, 0.5, 0) triple older pickers returned, which is black.
func ParseHSV(text string) [4]float64 {
	ch := bestEffort(text, SpaceHSVA).Channels
	ch[0] = colorspace.Coterminal(ch[0])
	return ch
}

// Hex6 returns the "#rrggbb" code of any CSS color text, dropping alpha, or
// the fallback code when the text is not a color.
func Hex6(text string) string {
	return FormatHex(bestEffort(text, SpaceRGB))
}
