// Package palette defines the fixed set of stroke colors.
package palette

import (
	"fmt"
	"image/color"
)

// Color identifies one of the built-in stroke colors.
type Color int

const (
	// Blue is the color strokes use until a swatch is selected.
	Blue Color = iota
	// Red is selected by the red swatch.
	Red
	// Green is selected by the green swatch.
	Green

	numColors
)

// Default is the color in effect at startup.
const Default = Blue

var values = [numColors]struct {
	name string
	rgba color.RGBA
}{
	Blue:  {"blue", color.RGBA{R: 0, G: 0, B: 255, A: 255}},
	Red:   {"red", color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	Green: {"green", color.RGBA{R: 0, G: 255, B: 0, A: 255}},
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	return c >= 0 && c < numColors
}

// RGBA returns the drawing color. Invalid colors map to the default.
func (c Color) RGBA() color.RGBA {
	if !c.Valid() {
		return values[Default].rgba
	}
	return values[c].rgba
}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return values[c].name
}

// All returns every palette color in declaration order.
func All() []Color {
	out := make([]Color, 0, numColors)
	for c := Color(0); c < numColors; c++ {
		out = append(out, c)
	}
	return out
}
