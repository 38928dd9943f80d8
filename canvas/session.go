package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/ringfield/concentric/geom"
	"golang.org/x/image/draw"
)

// FullCircle is the number of native angle units in a full turn.
const FullCircle = 360 * 16

// Tolerance is the maximum distance, in pixels, between a curve and the
// Béziers approximating it.
const Tolerance = 0.1

// Radians converts an angle in native units to radians in the canvas' y-down
// coordinate space. The sign flips because native angles run counter-clockwise
// on screen.
func Radians(native float64) float64 {
	return -native * math.Pi / (180 * 16)
}

// Cap styles for [Pen].
const (
	FlatCap   = geom.ButtCap
	SquareCap = geom.SquareCap
	RoundCap  = geom.RoundCap
)

// Pen describes how arcs are stroked.
type Pen struct {
	Color color.RGBA
	Width float64
	Cap   geom.Cap
}

// Session is an open paint session on a canvas. All drawing goes through a
// session; drawing on an ended session panics.
type Session struct {
	c     *Canvas
	ended bool
}

// End closes the session, allowing a new one to begin. Calling End more than
// once has no effect.
func (s *Session) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.c.session = nil
}

func (s *Session) Size() (width, height int) {
	s.check()
	return s.c.Size()
}

func (s *Session) check() {
	if s.ended {
		panic("canvas: draw on an ended paint session")
	}
}

// StrokeArc strokes the arc of the ellipse inscribed in box, starting at
// startAngle and spanning spanAngle, both in native units. Boxes with negative
// extents are normalized. A pen with a non-positive width draws a line one
// pixel wide.
func (s *Session) StrokeArc(box geom.Rect, startAngle, spanAngle float64, pen Pen) {
	s.check()
	width := pen.Width
	if !(width > 0) {
		width = 1
	}
	a := geom.ArcInRect(box, Radians(startAngle), Radians(spanAngle))
	style := geom.DefaultStroke.WithWidth(width).WithCaps(pen.Cap)
	s.c.fill(geom.StrokeArc(a, style, Tolerance), Solid(pen.Color))
}

// FillPath fills the closed outline p with c using the nonzero winding rule.
func (s *Session) FillPath(p geom.BezPath, c color.Color) {
	s.check()
	s.c.fill(p, Solid(c))
}

// FillRect composites brush over the pixels in r. The brush is sampled in
// canvas coordinates.
func (s *Session) FillRect(r image.Rectangle, brush image.Image) {
	s.check()
	r = r.Intersect(s.c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.c.img, r, brush, r.Min, draw.Over)
}
