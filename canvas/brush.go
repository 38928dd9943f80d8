package canvas

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/ringfield/concentric/geom"
)

// Solid returns a brush painting a single colour.
func Solid(c color.Color) image.Image {
	return image.NewUniform(c)
}

// Stop is a colour at a relative position along a gradient.
type Stop struct {
	Offset float64
	Color  color.RGBA
}

// RadialGradient is a brush whose colour depends on the distance from
// Center. Offset 0 is the center, offset 1 is Radius away from it. Beyond the
// first and last stops the nearest stop's colour is used.
//
// Colours are interpolated in premultiplied RGBA.
type RadialGradient struct {
	Center geom.Point
	Radius float64
	Stops  []Stop
}

var _ image.Image = RadialGradient{}

// NewRadialGradient returns a gradient running from inner at the center to
// outer at radius.
func NewRadialGradient(center geom.Point, radius float64, inner, outer color.RGBA) RadialGradient {
	return RadialGradient{
		Center: center,
		Radius: radius,
		Stops: []Stop{
			{Offset: 0, Color: inner},
			{Offset: 1, Color: outer},
		},
	}
}

func (g RadialGradient) ColorModel() color.Model { return color.RGBAModel }

func (g RadialGradient) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{-1e9, -1e9}, Max: image.Point{1e9, 1e9}}
}

func (g RadialGradient) At(x, y int) color.Color {
	return g.RGBAAt(x, y)
}

// RGBAAt returns the colour at the center of pixel (x, y).
func (g RadialGradient) RGBAAt(x, y int) color.RGBA {
	if len(g.Stops) == 0 {
		return color.RGBA{}
	}
	var t float64
	if g.Radius > 0 {
		t = geom.Pt(float64(x)+0.5, float64(y)+0.5).Distance(g.Center) / g.Radius
	}
	return g.colorAt(t)
}

func (g RadialGradient) colorAt(t float64) color.RGBA {
	stops := g.Stops
	if !slices.IsSortedFunc(stops, cmpStop) {
		stops = slices.SortedStableFunc(slices.Values(stops), cmpStop)
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t > s1.Offset {
			continue
		}
		span := s1.Offset - s0.Offset
		if span <= 0 {
			return s1.Color
		}
		return lerpRGBA(s0.Color, s1.Color, (t-s0.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func cmpStop(a, b Stop) int {
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{
		R: l(a.R, b.R),
		G: l(a.G, b.G),
		B: l(a.B, b.B),
		A: l(a.A, b.A),
	}
}
