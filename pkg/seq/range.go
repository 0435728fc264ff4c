package seq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range iterates the half-open interval [start, end) of an integer type.
type Range[T constraints.Integer] struct {
	start T
	end   T
}

var (
	_ DoubleEnded[int] = (*Range[int])(nil)
	_ Cloner[int]      = (*Range[int])(nil)
	_ ExactSize        = (*Range[int])(nil)
	_ Counter          = (*Range[int])(nil)
	_ Fuser            = (*Range[int])(nil)
)

// NewRange returns a Range over [start, end). It is empty when start >= end.
func NewRange[T constraints.Integer](start, end T) *Range[T] {
	return &Range[T]{start: start, end: end}
}

// Upto returns a Range over [0, n).
func Upto[T constraints.Integer](n T) *Range[T] {
	return NewRange(0, n)
}

func (r *Range[T]) Next() (T, bool) {
	if r.start >= r.end {
		var zero T
		return zero, false
	}
	v := r.start
	r.start++
	return v, true
}

func (r *Range[T]) NextBack() (T, bool) {
	if r.start >= r.end {
		var zero T
		return zero, false
	}
	r.end--
	return r.end, true
}

// SizeHint is exact unless the remaining length does not fit in an int.
func (r *Range[T]) SizeHint() SizeHint {
	n, ok := r.remaining()
	if !ok {
		return AtLeast(math.MaxInt)
	}
	return Exact(n)
}

// Len saturates at math.MaxInt.
func (r *Range[T]) Len() int {
	n, _ := r.remaining()
	return n
}

func (r *Range[T]) Count() int {
	n := r.Len()
	r.start = r.end
	return n
}

func (r *Range[T]) Fused() bool {
	return true
}

func (r *Range[T]) Clone() Iterator[T] {
	c := *r
	return &c
}

// remaining computes end-start without overflowing T. The subtraction is
// done modulo 2^64, which is exact for every integer type up to 64 bits.
func (r *Range[T]) remaining() (int, bool) {
	if r.start >= r.end {
		return 0, true
	}
	diff := uint64(r.end) - uint64(r.start)
	if diff > math.MaxInt {
		return math.MaxInt, false
	}
	return int(diff), true
}
