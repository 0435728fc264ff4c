// Package mix combines two seq iterators into their cartesian product
// without materialising either side.
//
// Key operations:
// - NewPairWith: pair a fixed item with every element of an iterator
// - New: for each element of the first iterator, walk a fresh clone of the
//   second; pairs sharing a first element are always consecutive
// - Next/NextBack: forward draws walk first and second head-to-tail,
//   reverse draws walk both tail-to-head; mixing the two meets in the middle
// - SizeHint/Count: remaining sizes, saturating instead of overflowing
// - All: range-over-func view yielding (first, second)
package mix
