// Package concentric generates raster images of concentric, randomly
// coloured arc bands.
//
// Rings are laid out from the edge of the canvas towards its center. Each
// ring's thickness, padding, brightness and saturation are interpolated
// linearly across the canvas with [Remap], and each ring's circumference is
// split into a random sequence of arc segments separated by gaps. Accepted
// segments are drawn by [DrawArc] as a bright outline stroke with a slightly
// narrower fill stroke on top.
//
// # Randomness
//
// All random choices are drawn from a single *rand.Rand passed to [Compose].
// The order of draws is fixed, so a seed together with a [Layout] fully
// determines the composition. [NewRand] builds the stream used by [Scene] for
// a seed.
//
// # Angles
//
// Angles are in the drawing surface's native unit, sixteenths of a degree,
// counter-clockwise from 3 o'clock. See package canvas.
package concentric
