package dotbraille

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Lightness returns the OkLab L component of an sRGB encoded color. The result
// is nominally in [0, 1] but is not clamped. Alpha is ignored: the stored
// channels are read as if the color were opaque.
func Lightness(c color.NRGBA) float64 {
	return lightnessOf(float64(c.R), float64(c.G), float64(c.B))
}

// lightnessOf takes gamma encoded channels in [0, 255].
func lightnessOf(r, g, b float64) float64 {
	l, _, _ := colorful.Color{R: r / 0xff, G: g / 0xff, B: b / 0xff}.OkLab()
	return l
}
