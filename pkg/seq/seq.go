package seq

import "iter"

// Iterator yields elements one at a time until it reports false.
type Iterator[T any] interface {
	// Next returns the next element, or false once the sequence is exhausted
	Next() (T, bool)
	// SizeHint returns bounds on the number of remaining elements
	SizeHint() SizeHint
}

// DoubleEnded is an Iterator that can also be drawn from its tail.
// Next and NextBack consume the same elements: they meet in the middle.
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (T, bool)
}

// ExactSize is implemented by iterators that know their remaining length.
type ExactSize interface {
	Len() int
}

// Counter is implemented by iterators that can count their remaining
// elements faster than by draining them. Count consumes the iterator.
type Counter interface {
	Count() int
}

// Fuser is implemented by iterators that can tell whether they keep
// returning false once they have returned false.
type Fuser interface {
	Fused() bool
}

// Cloner is an Iterator that can produce an independent traversal starting
// from its current position.
type Cloner[T any] interface {
	Iterator[T]
	Clone() Iterator[T]
}

// Count drains it and returns how many elements it produced.
func Count[T any](it Iterator[T]) int {
	if c, ok := it.(Counter); ok {
		return c.Count()
	}

	n := 0
	for {
		if _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// preallocLimit caps how much Collect trusts a size hint up front.
const preallocLimit = 1 << 12

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	res := make([]T, 0, min(it.SizeHint().Lower, preallocLimit))
	for {
		v, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, v)
	}
}

// All adapts it to a range-over-func sequence. The sequence is single use:
// ranging over it consumes it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// IsFused reports whether it guarantees to stay exhausted.
func IsFused(it any) bool {
	f, ok := it.(Fuser)
	return ok && f.Fused()
}
