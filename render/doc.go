// Package render draws previews of a color wheel picker with gg.
//
// The preview follows the classic widget layout:
//
//   - a hue ring, each pixel colored by its angle around the center
//   - a dark inner disc shaded by a radial gradient
//   - the saturation/value triangle of the selected hue, every pixel showing
//     the color it selects, with a small arrow at the hue vertex
//   - the hue marker and the saturation/value marker
//   - optionally, a caption with the selection as hex and CSS text
//
// # Usage
//
//	w, _ := colorwheel.New()
//	sel := colorwheel.SelectionFromCSS("#ff8800")
//
//	dc, err := render.Draw(w, sel, render.WithCaption(true))
//	if err != nil {
//		return err
//	}
//	return dc.SavePNG("wheel.png")
//
// Drawing uses the gg software renderer; no GPU is required.
package render
