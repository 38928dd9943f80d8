package canvas

import (
	"image"

	"github.com/ringfield/concentric/geom"
	"golang.org/x/image/draw"
)

// fill rasterizes p with anti-aliasing and composites src through it. The
// rasterizer only covers the part of the canvas touched by p's control box,
// grown by a pixel for edge coverage; geometry outside the canvas is clipped
// by the rasterizer.
func (c *Canvas) fill(p geom.BezPath, src image.Image) {
	if len(p) == 0 || p.IsNaN() {
		return
	}
	box := p.ControlBox().Inflate(1, 1).Intersect(geom.RectFromImage(c.img.Bounds()))
	if box.IsEmpty() {
		return
	}
	r := box.Pixels()

	z := &c.raster
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Over
	for _, el := range p.Translate(geom.Vec(-float64(r.Min.X), -float64(r.Min.Y))) {
		switch el.Kind {
		case geom.MoveToKind:
			z.MoveTo(f32(el.P0))
		case geom.LineToKind:
			z.LineTo(f32(el.P0))
		case geom.QuadToKind:
			x1, y1 := f32(el.P0)
			x2, y2 := f32(el.P1)
			z.QuadTo(x1, y1, x2, y2)
		case geom.CubicToKind:
			x1, y1 := f32(el.P0)
			x2, y2 := f32(el.P1)
			x3, y3 := f32(el.P2)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case geom.ClosePathKind:
			z.ClosePath()
		}
	}
	z.Draw(c.img, r, src, r.Min)
}

func f32(pt geom.Point) (float32, float32) {
	return float32(pt.X), float32(pt.Y)
}
