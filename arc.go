package concentric

import (
	"math/rand/v2"

	"github.com/ringfield/concentric/canvas"
	"github.com/ringfield/concentric/geom"
)

const (
	// outlineBoost brightens the outline stroke relative to the fill.
	outlineBoost = 0.1
	// borderWidth is how much narrower the fill stroke is than the outline.
	borderWidth = 4
	// MinFillWidth is the narrowest fill stroke drawn. Segments thinner than
	// the border still get a visible fill of this width.
	MinFillWidth = 1
)

// Painter is the drawing surface the composer renders to, typically an open
// *canvas.Session.
type Painter interface {
	Size() (width, height int)
	StrokeArc(box geom.Rect, startAngle, spanAngle float64, pen canvas.Pen)
}

var _ Painter = (*canvas.Session)(nil)

// Segment describes one arc segment of a ring.
type Segment struct {
	// Ring is the index of the ring, counting from the outermost.
	Ring int
	// Offset is the ring's signed offset from the canvas center.
	Offset float64
	// StartAngle and SpanAngle are in native units.
	StartAngle float64
	SpanAngle  float64
	// Inner and Outer bound the square the arc is inscribed in, on both axes.
	Inner float64
	Outer float64
	// Thickness is the width of the outline stroke.
	Thickness  float64
	Value      float64
	Saturation float64
	// Hue is the index into the palette of the chosen hue.
	Hue int
}

// DrawArc draws seg onto p with a hue picked at random from hues: first an
// outline stroke of the full thickness, brightened slightly, then the fill
// stroke narrower by the border width. Both strokes have flat caps.
//
// The returned segment has Hue set to the chosen palette index.
func DrawArc(p Painter, rng *rand.Rand, seg Segment, hues []float64) Segment {
	seg.Hue = rng.IntN(len(hues))
	hue := hues[seg.Hue]
	box := geom.Square(seg.Inner, seg.Outer)

	pen := canvas.Pen{
		Color: HSV(hue, seg.Saturation, min(seg.Value+outlineBoost, 1)),
		Width: seg.Thickness,
		Cap:   canvas.FlatCap,
	}
	p.StrokeArc(box, seg.StartAngle, seg.SpanAngle, pen)

	pen.Color = HSV(hue, seg.Saturation, seg.Value)
	pen.Width = max(seg.Thickness-borderWidth, MinFillWidth)
	p.StrokeArc(box, seg.StartAngle, seg.SpanAngle, pen)

	return seg
}
