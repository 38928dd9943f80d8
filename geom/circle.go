package geom

import (
	"iter"
	"math"
	"slices"
)

type Circle struct {
	Center Point
	Radius float64
}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		scaledError := math.Abs(c.Radius) / tolerance
		var n int
		var armLength float64
		if scaledError < 1.0/1.9608e-4 {
			// Solution from http://spencermortensen.com/articles/bezier-circle/
			n = 4
			armLength = 0.551915024494
		} else {
			// This is empirically determined to fall within error tolerance.
			n = int(math.Ceil(math.Pow(1.1163*scaledError, 1.0/6.0)))
			armLength = (4.0 / 3.0) * math.Tan(math.Pi/2/(float64(n)))
		}

		x, y := c.Center.Splat()
		r := c.Radius
		if !yield(MoveTo(Pt(x+r, y))) {
			return
		}
		deltaTh := 2.0 * math.Pi / float64(n)
		for ix := 1; ix <= n; ix++ {
			a := armLength
			th1 := deltaTh * float64(ix)
			th0 := th1 - deltaTh
			s0, c0 := math.Sincos(th0)
			var s1, c1 float64
			if ix == n {
				s1 = 0.0
				c1 = 1.0
			} else {
				s1, c1 = math.Sincos(th1)
			}
			if !yield(CubicTo(
				Pt(x+r*(c0-a*s0), y+r*(s0+a*c0)),
				Pt(x+r*(c1+a*s1), y+r*(s1-a*c1)),
				Pt(x+r*c1, y+r*s1),
			)) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Sector is the region between two concentric, axis-aligned ellipses,
// limited to an angular range. With equal radii on both axes it is an
// annular sector; with zero inner radii it is a pie slice.
type Sector struct {
	Center     Point
	OuterRadii Vec2
	InnerRadii Vec2
	StartAngle float64
	SweepAngle float64
}

// PathElements yields the closed outline of the sector. For a positive sweep
// the outline has positive signed area.
func (s Sector) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		outer := Arc{
			Center:     s.Center,
			Radii:      s.OuterRadii,
			StartAngle: s.StartAngle,
			SweepAngle: s.SweepAngle,
		}
		inner := Arc{
			Center:     s.Center,
			Radii:      s.InnerRadii,
			StartAngle: s.StartAngle + s.SweepAngle,
			SweepAngle: -s.SweepAngle,
		}

		if !yield(MoveTo(inner.Point(s.StartAngle))) {
			return
		}
		if !yield(LineTo(outer.Point(s.StartAngle))) {
			return
		}
		for el := range dropFirst(outer.PathElements(tolerance)) {
			if !yield(el) {
				return
			}
		}
		if !yield(LineTo(inner.Point(inner.StartAngle))) {
			return
		}
		for el := range dropFirst(inner.PathElements(tolerance)) {
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

// Area returns the unsigned area of the sector.
func (s Sector) Area() float64 {
	outer := s.OuterRadii.X * s.OuterRadii.Y
	inner := s.InnerRadii.X * s.InnerRadii.Y
	return 0.5 * math.Abs((outer-inner)*s.SweepAngle)
}
