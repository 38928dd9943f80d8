package concentric

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV returns the opaque colour for the given hue, saturation and value, all
// in [0, 1]. Hue wraps around, so 1 is the same as 0. Channels are truncated to
// 8 bits.
func HSV(hue, saturation, value float64) color.RGBA {
	h := math.Mod(hue, 1)
	if h < 0 {
		h++
	}
	c := colorful.Hsv(h*360, saturation, value)
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: 255,
	}
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1) * 255)
}
