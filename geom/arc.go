package geom

import (
	"iter"
	"math"
)

// Arc is a portion of an axis-aligned ellipse.
//
// Angles are parametric ellipse angles in radians. For circular arcs they are
// ordinary polar angles.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
}

// ArcInRect returns the arc of the ellipse inscribed in r, as used by
// bounding-box based drawing APIs.
func ArcInRect(r Rect, startAngle, sweepAngle float64) Arc {
	r = r.Abs()
	return Arc{
		Center:     r.Center(),
		Radii:      Vec(r.Width()/2, r.Height()/2),
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
	}
}

func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := sampleEllipse(a.Radii, a.StartAngle)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				return
			}
		}
	}
}

// Point returns the point on the arc's ellipse at the given angle.
func (a Arc) Point(angle float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, angle))
}

// Tangent returns the derivative of the ellipse at the given angle. It points
// in the direction of increasing angle.
func (a Arc) Tangent(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: -a.Radii.X * sin,
		Y: a.Radii.Y * cos,
	}
}

func (a Arc) EndAngle() float64 {
	return a.StartAngle + a.SweepAngle
}

// Normalize returns an equivalent arc with a non-negative sweep angle.
func (a Arc) Normalize() Arc {
	if a.SweepAngle < 0 {
		a.StartAngle += a.SweepAngle
		a.SweepAngle = -a.SweepAngle
	}
	return a
}

// sampleEllipse returns the point on the origin-centred ellipse with the given
// radii at the given angle.
func sampleEllipse(radii Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}
}

// dropFirst skips the leading MoveTo of a shape's outline so it can be
// appended to a path that is already at that point.
func dropFirst(seq iter.Seq[PathElement]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		first := true
		for el := range seq {
			if first {
				first = false
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}
