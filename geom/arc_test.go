package geom

import (
	"math"
	"slices"
	"testing"
)

func TestArcInRect(t *testing.T) {
	a := ArcInRect(Square(-100, 300), 0, math.Pi)
	diff(t, Pt(100, 100), a.Center)
	diff(t, Vec(200, 200), a.Radii)

	// Reversed bounds describe the same ellipse.
	b := ArcInRect(Square(300, -100), 0, math.Pi)
	diff(t, a, b)
}

func TestArcEndpoints(t *testing.T) {
	a := Arc{
		Center:     Pt(50, 50),
		Radii:      Vec(10, 20),
		StartAngle: 0,
		SweepAngle: math.Pi / 2,
	}
	var p BezPath = slices.Collect(a.PathElements(0.01))
	if p[0].Kind != MoveToKind || p[0].P0 != Pt(60, 50) {
		t.Errorf("got first element %v, want MoveTo(60, 50)", p[0])
	}
	end, ok := p[len(p)-1].EndPoint()
	if !ok {
		t.Fatalf("last element %v has no end point", p[len(p)-1])
	}
	if !approxEqual(end.X, 50, 1e-9) || !approxEqual(end.Y, 70, 1e-9) {
		t.Errorf("got end point %v, want (50, 70)", end)
	}
}

func TestArcNormalize(t *testing.T) {
	a := Arc{Radii: Vec(1, 1), StartAngle: 1, SweepAngle: -0.5}
	n := a.Normalize()
	if n.StartAngle != 0.5 || n.SweepAngle != 0.5 {
		t.Errorf("got start %v sweep %v, want 0.5 and 0.5", n.StartAngle, n.SweepAngle)
	}
	if n.EndAngle() != 1 {
		t.Errorf("got end angle %v, want 1", n.EndAngle())
	}
	if n.Normalize() != n {
		t.Error("normalizing twice changed the arc")
	}
}

func TestArcTangentDirection(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radii: Vec(5, 5)}
	// At angle 0, increasing the angle moves towards positive y.
	tan := a.Tangent(0)
	if !approxEqual(tan.X, 0, 1e-12) || tan.Y <= 0 {
		t.Errorf("got tangent %v, want one pointing towards positive y", tan)
	}
}
