package geom

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// EndPoint returns the point the pen rests on after el. ClosePath has no end
// point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path stored as a slice of path elements.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Extend appends all elements of seq.
func (p *BezPath) Extend(seq iter.Seq[PathElement]) {
	for el := range seq {
		p.Push(el)
	}
}

// ControlBox returns the bounding box of all points of the path, including
// Bézier control points. It encloses the path but is not necessarily tight.
func (p BezPath) ControlBox() Rect {
	var bbox Rect
	first := true
	add := func(pt Point) {
		if first {
			first = false
			bbox = Rect{pt.X, pt.Y, pt.X, pt.Y}
		} else {
			bbox = bbox.UnionPoint(pt)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	return bbox
}

// SignedArea computes the signed area of the path, treating every subpath as
// closed. Subpaths running from the positive x axis towards the positive y
// axis have positive area.
func (p BezPath) SignedArea() float64 {
	var sum float64
	var start, last Point
	closeSub := func() {
		if last != start {
			sum += lineArea(last, start)
		}
		last = start
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSub()
			start = el.P0
		case LineToKind:
			sum += lineArea(last, el.P0)
		case QuadToKind:
			// Degree elevation; the area formula is only needed for cubics.
			c1 := last.Translate(el.P0.Sub(last).Mul(2.0 / 3.0))
			c2 := el.P1.Translate(el.P0.Sub(el.P1).Mul(2.0 / 3.0))
			sum += cubicArea(last, c1, c2, el.P1)
		case CubicToKind:
			sum += cubicArea(last, el.P0, el.P1, el.P2)
		case ClosePathKind:
			closeSub()
		}
		if pt, ok := el.EndPoint(); ok {
			last = pt
		}
	}
	closeSub()
	return sum
}

// Translate returns a copy of the path moved by v.
func (p BezPath) Translate(v Vec2) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = PathElement{
			Kind: el.Kind,
			P0:   el.P0.Translate(v),
			P1:   el.P1.Translate(v),
			P2:   el.P2.Translate(v),
		}
	}
	return out
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

func lineArea(p0, p1 Point) float64 {
	return Vec2(p0).Cross(Vec2(p1)) * 0.5
}

// cubicArea is the signed area between the cubic Bézier and the origin, by
// Green's theorem.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	v := p0.X*(6.0*p1.Y+3.0*p2.Y+p3.Y) +
		3.0*(p1.X*(-2.0*p0.Y+p2.Y+p3.Y)-p2.X*(p0.Y+p1.Y-2.0*p3.Y)) -
		p3.X*(p0.Y+3.0*p1.Y+6.0*p2.Y)
	return v * (1.0 / 20.0)
}
