package canvas

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ErrSessionActive is returned by [Canvas.Begin] when the canvas already has
// an open session.
var ErrSessionActive = errors.New("canvas: paint session already active")

// Canvas owns a fixed-size pixel buffer. It is not safe for concurrent use.
type Canvas struct {
	img     *image.RGBA
	bg      *color.RGBA
	session *Session
	raster  vector.Rasterizer
}

// New returns a canvas of the given size. If bg is non-nil the buffer is
// filled with it, otherwise it starts out fully transparent. Negative sizes
// are treated as zero.
func New(width, height int, bg *color.RGBA) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
	if bg != nil {
		v := *bg
		c.bg = &v
	}
	c.fillBackground()
	return c
}

func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Image returns the canvas' pixel buffer. The buffer is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Background returns the background colour, if any.
func (c *Canvas) Background() (color.RGBA, bool) {
	if c.bg == nil {
		return color.RGBA{}, false
	}
	return *c.bg, true
}

// Clear resets every pixel to the background colour, or to transparent if the
// canvas has none. Clearing while a session is open is a programming error.
func (c *Canvas) Clear() {
	if c.session != nil {
		panic("canvas: Clear called during an open paint session")
	}
	clear(c.img.Pix)
	c.fillBackground()
}

func (c *Canvas) fillBackground() {
	if c.bg == nil {
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(*c.bg), image.Point{}, draw.Src)
}

// Begin opens a paint session. Sessions are exclusive: Begin fails with
// [ErrSessionActive] until the open session is ended.
func (c *Canvas) Begin() (*Session, error) {
	if c.session != nil {
		return nil, ErrSessionActive
	}
	s := &Session{c: c}
	c.session = s
	return s, nil
}

// Paint runs fn inside a paint session. The session is ended when fn returns
// or panics.
func (c *Canvas) Paint(fn func(s *Session) error) error {
	s, err := c.Begin()
	if err != nil {
		return err
	}
	defer s.End()
	return fn(s)
}
