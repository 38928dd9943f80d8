package concentric

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ringfield/concentric/canvas"
	"github.com/ringfield/concentric/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

type stroke struct {
	Box   geom.Rect
	Start float64
	Span  float64
	Pen   canvas.Pen
}

// recorder is a Painter that records strokes instead of rasterizing them.
type recorder struct {
	width, height int
	strokes       []stroke
}

func (r *recorder) Size() (int, int) { return r.width, r.height }

func (r *recorder) StrokeArc(box geom.Rect, start, span float64, pen canvas.Pen) {
	r.strokes = append(r.strokes, stroke{box, start, span, pen})
}
