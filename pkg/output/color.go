// Package output turns averaged linear radiance into 8-bit pixels and encodes rendered images.
package output

import (
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// LinearToGamma applies gamma 2 correction
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// QuantizeColor clamps a linear color to [0,1], gamma corrects it and quantizes each channel to [0,255]
func QuantizeColor(c core.Color) (r, g, b int) {
	c = c.Clamp(0, 1)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

func toByte(x float64) int {
	return int(255.999 * LinearToGamma(x))
}

// ToRGBA converts a linear color to an opaque RGBA pixel
func ToRGBA(c core.Color) color.RGBA {
	r, g, b := QuantizeColor(c)
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}
