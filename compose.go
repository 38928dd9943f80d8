package concentric

import (
	"math/rand/v2"

	"github.com/ringfield/concentric/canvas"
)

const (
	// FullCircle is the angular sweep of one ring, in native units.
	FullCircle = canvas.FullCircle
	// MinArcAngle is the smallest candidate span, 5 degrees.
	MinArcAngle = 5 * 16
	// ProbabilityScale is the denominator of Layout.ArcProbability.
	ProbabilityScale = 10000

	minValue      = 0.07
	maxValue      = 0.95
	minSaturation = 0.25
	maxSaturation = 0.75

	// gapFactor scales a ring's padding into the angular gap after each
	// candidate span.
	gapFactor = 32
)

// Layout controls the ring field. Zero bounds are derived from the long edge
// of the surface. The zero Layout has an arc probability of 0 and draws
// nothing; start from [DefaultLayout].
//
// Thickness, padding, value and saturation are interpolated from their max
// at the outermost ring to their min at the center. Swapping min and max
// inverts the direction.
type Layout struct {
	MinThickness float64
	MaxThickness float64
	MinPadding   float64
	MaxPadding   float64
	// ArcProbability is the chance, out of ProbabilityScale, that a candidate
	// span is drawn. 0 draws nothing, ProbabilityScale draws every candidate.
	ArcProbability int
	// RandomSeam starts each ring's segmentation at a random angle instead of
	// at 0.
	RandomSeam bool
	// OnArc, if set, is called for every drawn segment.
	OnArc func(Segment)
}

var DefaultLayout = Layout{
	ArcProbability: ProbabilityScale,
}

func (l Layout) WithThickness(lo, hi float64) Layout {
	l.MinThickness, l.MaxThickness = lo, hi
	return l
}

func (l Layout) WithPadding(lo, hi float64) Layout {
	l.MinPadding, l.MaxPadding = lo, hi
	return l
}

func (l Layout) WithArcProbability(p int) Layout { l.ArcProbability = p; return l }
func (l Layout) WithRandomSeam(on bool) Layout   { l.RandomSeam = on; return l }
func (l Layout) WithOnArc(fn func(Segment)) Layout {
	l.OnArc = fn
	return l
}

// resolve fills in zero bounds from the surface's long edge.
func (l Layout) resolve(longEdge float64) Layout {
	def := func(v *float64, frac float64) {
		if *v == 0 {
			*v = frac * longEdge
		}
	}
	def(&l.MinThickness, 0.01)
	def(&l.MaxThickness, 0.08)
	def(&l.MinPadding, 0.03)
	def(&l.MaxPadding, 0.08)
	return l
}

// Stats summarizes a composition.
type Stats struct {
	Rings      int
	Candidates int
	Arcs       int
}

// Compose draws a ring field onto p.
//
// Rings are visited by their signed offset from the canvas center, from
// -longEdge/2 towards +longEdge/2. For each ring, the circumference is walked
// in candidate spans of random length between MinArcAngle and a full circle,
// each followed by a gap derived from the ring's padding. Every candidate
// rolls against layout.ArcProbability and is drawn with [DrawArc] on success.
//
// Per candidate, rng is consumed in a fixed order: span, roll, then the hue
// if the span is drawn. With RandomSeam, each ring first draws its seam.
//
// A zero-sized surface produces no rings. If a ring's thickness plus padding
// is not positive the walk stops, since the next ring could never be reached.
// hues must not be empty.
func Compose(p Painter, rng *rand.Rand, hues []float64, layout Layout) Stats {
	if len(hues) == 0 {
		panic("concentric: empty hue palette")
	}
	width, height := p.Size()
	longEdge := float64(max(width, height))
	l := layout.resolve(longEdge)

	minOffset := float64(int(-longEdge / 2))
	maxOffset := float64(int(longEdge / 2))

	var st Stats
	for offset := minOffset; offset < maxOffset; {
		thickness := Remap(offset, minOffset, maxOffset, l.MaxThickness, l.MinThickness)
		value := Remap(offset, minOffset, maxOffset, maxValue, minValue)
		saturation := Remap(offset, minOffset, maxOffset, maxSaturation, minSaturation)
		padding := Remap(offset, minOffset, maxOffset, l.MaxPadding, l.MinPadding)

		inner := offset + thickness/2
		outer := float64(width) - inner

		// The seam is where segmentation starts. Fixed at 0 it lines up the
		// start of every ring at 3 o'clock.
		var seam float64
		if l.RandomSeam {
			seam = rng.Float64() * FullCircle
		}

		for angle := 0.0; angle < FullCircle; {
			start := seam + angle + padding
			span := MinArcAngle + rng.Float64()*(FullCircle-MinArcAngle)
			roll := rng.IntN(ProbabilityScale)
			next := start + span + padding*gapFactor
			st.Candidates++

			if roll < l.ArcProbability {
				seg := DrawArc(p, rng, Segment{
					Ring:       st.Rings,
					Offset:     offset,
					StartAngle: start,
					SpanAngle:  span,
					Inner:      inner,
					Outer:      outer,
					Thickness:  thickness,
					Value:      value,
					Saturation: saturation,
				}, hues)
				st.Arcs++
				if l.OnArc != nil {
					l.OnArc(seg)
				}
			}

			if !(next > angle) {
				break
			}
			angle = next
		}
		st.Rings++

		step := thickness + padding
		if !(step > 0) {
			break
		}
		offset += step
	}
	return st
}
