// Package geom provides the 2D primitives used to turn arc strokes into
// fillable outlines: points, vectors, rectangles, Bézier path elements,
// elliptical arcs, circles and annular sectors.
//
// Coordinates are y-down, as is common for raster graphics. Angles are in
// radians; a positive angle rotates from the positive x axis towards the
// positive y axis, which appears clockwise on screen.
//
// # Shapes and paths
//
// Every shape can describe its outline as a sequence of [PathElement]
// values via its PathElements method. Curved outlines are approximated with
// cubic Béziers to within a caller-supplied tolerance. [BezPath] collects
// elements into a slice and provides the queries needed by rasterizers and
// tests, such as [BezPath.ControlBox] and [BezPath.SignedArea].
//
// # Strokes
//
// [StrokeArc] expands a stroked [Arc] into a closed outline, the band
// between the arc offset inwards and outwards by half the stroke width,
// finished with the [Cap] styles of the [Stroke]. Only arcs are supported;
// general stroke expansion of arbitrary paths is out of scope.
package geom
