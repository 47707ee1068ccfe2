// Package colorwheel implements the geometry and state of an HSV color wheel
// picker: a hue ring around an equilateral saturation/value triangle.
//
// # Overview
//
// A [Wheel] describes the fixed layout of the picker on a square canvas.
// Given a [Selection] (hue, saturation, value and alpha) it places the
// triangle and both markers, and given a pointer position it works out which
// part of the picker was hit and how the selection changes when the pointer
// is dragged.
//
//	w, err := colorwheel.New() // 256px canvas, layout of the classic widget
//	if err != nil {
//		return err
//	}
//	sel := colorwheel.SelectionFromCSS("rebeccapurple")
//
//	// Pointer pressed at (40, 200): hit-test and apply.
//	sel, target := w.Press(sel, colorwheel.TargetNone, geom.V2(40, 200))
//
//	fmt.Println(target, sel.Hex())
//
// # Sub-packages
//
//   - colorspace: conversions between RGB, HSL and HSV
//   - css: parsing and formatting of CSS color text
//   - geom: 2D vectors, triangle confinement and the saturation/value mapping
//   - render: PNG previews of a wheel drawn with github.com/gogpu/gg
//
// # Coordinate System
//
// Canvas coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increasing counter-clockwise on screen
//
// # Logging
//
// The library is silent by default. Call [SetLogger] to receive warnings
// about unparsable color text and debug output from the picker.
package colorwheel
