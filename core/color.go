package core

import (
	"fmt"
	"math"
)

// RGB is an 8-bit color kept independent of the terminal library
type RGB struct {
	R, G, B uint8
}

// Named colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGray  = RGB{128, 128, 128}
)

// mixChannel interpolates one channel from a toward b, rounding to nearest
func mixChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Blend lays src over c with opacity alpha in [0,1]
func (c RGB) Blend(src RGB, alpha float64) RGB {
	switch {
	case alpha <= 0:
		return c
	case alpha >= 1:
		return src
	}
	return RGB{
		R: mixChannel(c.R, src.R, alpha),
		G: mixChannel(c.G, src.G, alpha),
		B: mixChannel(c.B, src.B, alpha),
	}
}

// Scale dims c toward black; factors at or above 1 leave it unchanged
func (c RGB) Scale(factor float64) RGB {
	return RGBBlack.Blend(c, factor)
}

// Hex formats c as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
