package canvas

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ringfield/concentric/geom"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestNewFillsBackground(t *testing.T) {
	c := New(4, 3, &black)
	w, h := c.Size()
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)
	require.Equal(t, black, c.Image().RGBAAt(3, 2))

	bg, ok := c.Background()
	require.True(t, ok)
	require.Equal(t, black, bg)

	transparent := New(2, 2, nil)
	require.Equal(t, color.RGBA{}, transparent.Image().RGBAAt(1, 1))
	_, ok = transparent.Background()
	require.False(t, ok)
}

func TestNewNegativeSize(t *testing.T) {
	c := New(-5, 10, nil)
	require.True(t, c.Bounds().Empty())
	w, _ := c.Size()
	require.Zero(t, w)
}

func TestSessionsAreExclusive(t *testing.T) {
	c := New(10, 10, &black)
	s, err := c.Begin()
	require.NoError(t, err)

	_, err = c.Begin()
	require.ErrorIs(t, err, ErrSessionActive)

	s.End()
	s.End() // idempotent

	s2, err := c.Begin()
	require.NoError(t, err)
	s2.End()
}

func TestDrawOnEndedSessionPanics(t *testing.T) {
	c := New(10, 10, &black)
	s, err := c.Begin()
	require.NoError(t, err)
	s.End()

	require.Panics(t, func() {
		s.StrokeArc(geom.Square(0, 10), 0, FullCircle, Pen{Color: red, Width: 2})
	})
	require.Panics(t, func() {
		s.FillRect(c.Bounds(), Solid(red))
	})
}

func TestPaintEndsSession(t *testing.T) {
	c := New(10, 10, &black)
	errBoom := errors.New("boom")

	err := c.Paint(func(s *Session) error { return errBoom })
	require.ErrorIs(t, err, errBoom)

	require.Panics(t, func() {
		_ = c.Paint(func(s *Session) error { panic("draw failed") })
	})

	// Both sessions were released.
	var ran bool
	require.NoError(t, c.Paint(func(s *Session) error {
		ran = true
		return nil
	}))
	require.True(t, ran)
}

func TestPaintRejectsNestedSession(t *testing.T) {
	c := New(10, 10, &black)
	err := c.Paint(func(s *Session) error {
		return c.Paint(func(*Session) error { return nil })
	})
	require.ErrorIs(t, err, ErrSessionActive)
}

func TestClear(t *testing.T) {
	c := New(10, 10, &black)
	require.NoError(t, c.Paint(func(s *Session) error {
		s.FillRect(c.Bounds(), Solid(red))
		return nil
	}))
	require.Equal(t, red, c.Image().RGBAAt(5, 5))

	c.Clear()
	require.Equal(t, black, c.Image().RGBAAt(5, 5))

	s, err := c.Begin()
	require.NoError(t, err)
	require.Panics(t, c.Clear)
	s.End()
}

func TestStrokeFullCircle(t *testing.T) {
	c := New(100, 100, &black)
	require.NoError(t, c.Paint(func(s *Session) error {
		// Circle of radius 30 around (50, 50), 10 pixels wide.
		s.StrokeArc(geom.Square(20, 80), 0, FullCircle, Pen{Color: red, Width: 10, Cap: FlatCap})
		return nil
	}))

	img := c.Image()
	for _, pt := range []image.Point{{80, 50}, {19, 50}, {50, 80}, {50, 19}} {
		requireReddish(t, img.RGBAAt(pt.X, pt.Y), pt)
	}
	// Inside the ring and outside of it nothing changed.
	require.Equal(t, black, img.RGBAAt(50, 50))
	require.Equal(t, black, img.RGBAAt(2, 2))
	require.Equal(t, black, img.RGBAAt(95, 50))
}

func TestStrokeArcDirection(t *testing.T) {
	c := New(100, 100, &black)
	require.NoError(t, c.Paint(func(s *Session) error {
		// A quarter turn counter-clockwise from 3 o'clock covers the upper
		// right quadrant.
		s.StrokeArc(geom.Square(20, 80), 0, 90*16, Pen{Color: red, Width: 10, Cap: FlatCap})
		return nil
	}))

	img := c.Image()
	requireReddish(t, img.RGBAAt(71, 28), image.Pt(71, 28))
	require.Equal(t, black, img.RGBAAt(71, 71))
	require.Equal(t, black, img.RGBAAt(28, 28))
	require.Equal(t, black, img.RGBAAt(28, 71))
}

func TestStrokeArcCaps(t *testing.T) {
	paint := func(cap geom.Cap) *image.RGBA {
		c := New(100, 100, &black)
		require.NoError(t, c.Paint(func(s *Session) error {
			s.StrokeArc(geom.Square(20, 80), 0, 90*16, Pen{Color: red, Width: 10, Cap: cap})
			return nil
		}))
		return c.Image()
	}

	// Just below 3 o'clock, past the start of the arc.
	pt := image.Pt(80, 52)
	require.Equal(t, black, paint(FlatCap).RGBAAt(pt.X, pt.Y))
	requireReddish(t, paint(SquareCap).RGBAAt(pt.X, pt.Y), pt)
	requireReddish(t, paint(RoundCap).RGBAAt(pt.X, pt.Y), pt)
}

func TestStrokeOffCanvas(t *testing.T) {
	c := New(50, 50, &black)
	require.NoError(t, c.Paint(func(s *Session) error {
		// Entirely outside the canvas.
		s.StrokeArc(geom.Square(200, 300), 0, FullCircle, Pen{Color: red, Width: 10})
		// Much larger than the canvas; only the corners are touched.
		s.StrokeArc(geom.Square(-1000, 1050), 0, FullCircle, Pen{Color: red, Width: 4})
		return nil
	}))
	require.Equal(t, black, c.Image().RGBAAt(25, 25))
}

func TestFillPath(t *testing.T) {
	square := func(lo, hi float64) geom.BezPath {
		var p geom.BezPath
		p.MoveTo(geom.Pt(lo, lo))
		p.LineTo(geom.Pt(hi, lo))
		p.LineTo(geom.Pt(hi, hi))
		p.LineTo(geom.Pt(lo, hi))
		p.ClosePath()
		return p
	}

	c := New(40, 40, &black)
	require.NoError(t, c.Paint(func(s *Session) error {
		s.FillPath(square(10, 30), red)
		// Partly off the canvas.
		s.FillPath(square(-10, 5), red)
		// NaN coordinates are ignored.
		s.FillPath(square(math.NaN(), 35), red)
		return nil
	}))

	img := c.Image()
	for _, pt := range []image.Point{{10, 10}, {20, 20}, {29, 29}, {0, 0}, {4, 4}} {
		require.Equal(t, red, img.RGBAAt(pt.X, pt.Y), "pixel %v", pt)
	}
	for _, pt := range []image.Point{{9, 9}, {30, 30}, {5, 5}, {35, 35}, {39, 0}} {
		require.Equal(t, black, img.RGBAAt(pt.X, pt.Y), "pixel %v", pt)
	}
}

func requireReddish(t *testing.T, got color.RGBA, pt image.Point) {
	t.Helper()
	if got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("pixel %v: got %v, want red", pt, got)
	}
}
