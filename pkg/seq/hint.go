package seq

import "math"

// SizeHint bounds the number of elements an iterator has left.
// Upper is meaningful only when Bounded is true; an unbounded hint means
// the upper bound is unknown or does not fit in an int.
type SizeHint struct {
	Lower   int
	Upper   int
	Bounded bool
}

func Exact(n int) SizeHint {
	return SizeHint{Lower: n, Upper: n, Bounded: true}
}

func AtLeast(n int) SizeHint {
	return SizeHint{Lower: n}
}

// IsExact reports whether the lower and upper bounds agree.
func (h SizeHint) IsExact() bool {
	return h.Bounded && h.Lower == h.Upper
}

// IsEmpty reports whether the hint guarantees no elements remain.
func (h SizeHint) IsEmpty() bool {
	return h.Bounded && h.Upper == 0
}

// Mul returns the hint of a cartesian product of two sequences.
// An empty factor makes the product empty even when the other factor is
// unbounded.
func (h SizeHint) Mul(o SizeHint) SizeHint {
	if h.IsEmpty() || o.IsEmpty() {
		return Exact(0)
	}

	lower := SaturatingMul(h.Lower, o.Lower)
	if h.Bounded && o.Bounded {
		if upper, ok := CheckedMul(h.Upper, o.Upper); ok {
			return SizeHint{Lower: lower, Upper: upper, Bounded: true}
		}
	}
	return AtLeast(lower)
}

// Add returns the hint of two sequences traversed one after the other.
func (h SizeHint) Add(o SizeHint) SizeHint {
	lower := SaturatingAdd(h.Lower, o.Lower)
	if h.Bounded && o.Bounded {
		if upper, ok := CheckedAdd(h.Upper, o.Upper); ok {
			return SizeHint{Lower: lower, Upper: upper, Bounded: true}
		}
	}
	return AtLeast(lower)
}

// CheckedMul multiplies two non-negative counts, reporting false on overflow.
func CheckedMul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckedAdd adds two non-negative counts, reporting false on overflow.
func CheckedAdd(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func SaturatingMul(a, b int) int {
	if n, ok := CheckedMul(a, b); ok {
		return n
	}
	return math.MaxInt
}

func SaturatingAdd(a, b int) int {
	if n, ok := CheckedAdd(a, b); ok {
		return n
	}
	return math.MaxInt
}
