// Package canvas implements the raster drawing surface: an RGBA pixel buffer
// with an optional background colour, exclusive paint sessions, anti-aliased
// arc strokes, rectangle fills and persistence to image files.
//
// Drawing happens only through a [Session]. A canvas has at most one open
// session at a time; [Canvas.Paint] opens one for the duration of a function
// and closes it on every exit path.
//
// Angles given to [Session.StrokeArc] use the native angular unit of the
// surface, sixteenths of a degree, with positive angles running
// counter-clockwise from 3 o'clock as seen on screen. A full circle is
// [FullCircle] units.
package canvas
