package geom

import (
	"math"
	"slices"
	"testing"
)

func annulus(center Point, inner, outer, start, sweep float64) Sector {
	return Sector{
		Center:     center,
		OuterRadii: Vec(outer, outer),
		InnerRadii: Vec(inner, inner),
		StartAngle: start,
		SweepAngle: sweep,
	}
}

func TestCircleAreaSign(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	p := c.Path(1e-9)
	if a := p.SignedArea(); !approxEqual(a, 25*math.Pi, 1e-7) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if p[len(p)-1].Kind != ClosePathKind {
		t.Errorf("got last element %v, want ClosePath", p[len(p)-1])
	}
}

func TestSectorArea(t *testing.T) {
	tests := []struct {
		name string
		s    Sector
		area float64
	}{
		{
			"half annulus",
			annulus(Pt(0, 0), 8, 12, 0, math.Pi),
			40 * math.Pi,
		},
		{
			"full annulus",
			annulus(Pt(3, -4), 8, 12, 1, 2*math.Pi),
			80 * math.Pi,
		},
		{
			"pie slice",
			annulus(Pt(0, 0), 0, 10, math.Pi/4, math.Pi/2),
			25 * math.Pi,
		},
		{
			"elliptical band",
			Sector{Center: Pt(1, 1), OuterRadii: Vec(20, 10), InnerRadii: Vec(10, 5), SweepAngle: math.Pi},
			75 * math.Pi,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a := tt.s.Area(); !approxEqual(a, tt.area, 1e-9) {
				t.Errorf("got analytic area %v, want %v", a, tt.area)
			}
			var p BezPath = slices.Collect(tt.s.PathElements(1e-9))
			if a := p.SignedArea(); !approxEqual(a, tt.area, 1e-6) {
				t.Errorf("got path area %v, want %v", a, tt.area)
			}
		})
	}
}

func TestSectorNegativeSweep(t *testing.T) {
	s := annulus(Pt(0, 0), 8, 12, math.Pi, -math.Pi)
	if a := s.Area(); !approxEqual(a, 40*math.Pi, 1e-9) {
		t.Errorf("got area %v, want %v", a, 40*math.Pi)
	}
	var p BezPath = slices.Collect(s.PathElements(1e-9))
	if a := p.SignedArea(); !approxEqual(a, -40*math.Pi, 1e-6) {
		t.Errorf("got signed area %v, want %v", a, -40*math.Pi)
	}
}
