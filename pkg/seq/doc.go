// Package seq defines a small pull-based iterator protocol with exact size
// accounting, and a handful of sources implementing it.
//
// Unlike iter.Seq, an Iterator is a cursor: it can report how many elements
// remain, be drawn from either end, and be cloned to start an independent
// traversal from its current position. Combinators such as mix rely on these
// capabilities; All bridges any Iterator back to a range-over-func loop.
//
// Highlights:
// - Iterator/DoubleEnded: forward and reverse draws
// - ExactSize/Counter/Fuser/Cloner: optional capabilities detected at runtime
// - SizeHint: lower/upper remaining bounds with saturating arithmetic
// - Range/Slice/Endless: integer ranges, slice views and unbounded counters
// - Count/Collect/All/Rev: consumers and adapters
package seq
