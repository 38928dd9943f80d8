package geom

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVecTurn(t *testing.T) {
	v := Vec(3, 1)
	diff(t, Vec(-1, 3), v.Turn())
	if c := v.Cross(v.Turn()); c <= 0 {
		t.Errorf("turn goes the wrong way: cross = %v", c)
	}
	if h := Vec(3, 4).Normalize().Hypot(); !approxEqual(h, 1, 1e-12) {
		t.Errorf("got length %v, want 1", h)
	}
}
