package concentric

// Remap maps value from the interval [oldStart, oldEnd] onto [newStart,
// newEnd]. The mapping is affine and not clamped: values outside the old
// interval extrapolate.
//
// oldStart must differ from oldEnd; otherwise the result is ±Inf or NaN.
func Remap(value, oldStart, oldEnd, newStart, newEnd float64) float64 {
	return ((value-oldStart)*(newEnd-newStart))/(oldEnd-oldStart) + newStart
}
