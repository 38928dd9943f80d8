package geom

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap. The stroke ends exactly at the end of the arc.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

func (c Cap) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "InvalidCap"
	}
}

// Stroke describes the visual style of a stroke.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for capping the beginning of the arc.
	StartCap Cap
	// Style for capping the end of the arc.
	EndCap Cap
}

var DefaultStroke = Stroke{
	Width:    1.0,
	StartCap: ButtCap,
	EndCap:   ButtCap,
}

func (s Stroke) WithWidth(width float64) Stroke { s.Width = width; return s }
func (s Stroke) WithCaps(cap Cap) Stroke        { s.StartCap, s.EndCap = cap, cap; return s }

// StrokeArc expands a stroked arc into a fill.
//
// The body of the stroke is the [Sector] between the arc's ellipse shrunk
// and grown by half the stroke width. For circular arcs this is exact; for
// elliptical arcs it approximates the true parallel curves. Inner radii that
// would become negative are clamped to zero.
//
// All subpaths of the result share the same orientation, so the outline can
// be filled with the nonzero winding rule. A stroke with non-positive width
// produces an empty path, and an arc with zero sweep contributes only its caps.
func StrokeArc(a Arc, style Stroke, tolerance float64) BezPath {
	var out BezPath
	half := style.Width / 2
	if !(half > 0) {
		return out
	}
	a = a.Normalize()

	body := Sector{
		Center:     a.Center,
		OuterRadii: Vec(a.Radii.X+half, a.Radii.Y+half),
		InnerRadii: Vec(max(a.Radii.X-half, 0), max(a.Radii.Y-half, 0)),
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}
	if body.Area() > 0 {
		out.Extend(body.PathElements(tolerance))
	}

	out.Extend(capElements(a, a.StartAngle, -1, half, style.StartCap, tolerance))
	out.Extend(capElements(a, a.EndAngle(), 1, half, style.EndCap, tolerance))
	return out
}

// capElements returns the outline of the cap at angle. dir is -1 for the
// start of the arc and 1 for its end.
func capElements(a Arc, angle, dir, half float64, cap Cap, tolerance float64) BezPath {
	pt := a.Point(angle)
	switch cap {
	case SquareCap:
		tan := a.Tangent(angle)
		if tan.Hypot() == 0 {
			// Degenerate arc; there is no direction to extend in.
			return nil
		}
		t := tan.Normalize().Mul(dir * half)
		n := tan.Normalize().Turn().Mul(half)
		return polygon(
			pt.Translate(n),
			pt.Translate(n).Translate(t),
			pt.Translate(n.Negate()).Translate(t),
			pt.Translate(n.Negate()),
		)
	case RoundCap:
		return Circle{Center: pt, Radius: half}.Path(tolerance)
	default:
		return nil
	}
}

// polygon returns the closed outline through pts, oriented to have positive
// signed area.
func polygon(pts ...Point) BezPath {
	var p BezPath
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.ClosePath()
	if p.SignedArea() < 0 {
		var r BezPath
		r.MoveTo(pts[len(pts)-1])
		for i := len(pts) - 2; i >= 0; i-- {
			r.LineTo(pts[i])
		}
		r.ClosePath()
		return r
	}
	return p
}
