package mix

import (
	"iter"

	"github.com/ib-77/img-resize/pkg/seq"
)

// Mix is the cartesian product of two iterators, ordered by the first.
type Mix[A, B any] struct {
	first  seq.Iterator[A]
	second seq.Cloner[B]

	// front pairs the element most recently drawn from the head of first
	// with a clone of second; back does the same for the tail. Either is
	// nil when no such element is in progress.
	front *PairWith[A, B]
	back  *PairWith[A, B]
}

var _ seq.DoubleEnded[Pair[int, int]] = (*Mix[int, int])(nil)

// New takes ownership of both iterators. second is never drawn from
// directly; each element of first is paired with a fresh second.Clone().
// The first element of first is drawn immediately.
func New[A, B any](first seq.Iterator[A], second seq.Cloner[B]) *Mix[A, B] {
	m := &Mix[A, B]{first: first, second: second}
	if item, ok := first.Next(); ok {
		m.front = NewPairWith(item, second.Clone())
	}
	return m
}

func (m *Mix[A, B]) Next() (Pair[A, B], bool) {
	if m.front != nil {
		if p, ok := m.front.Next(); ok {
			return p, true
		}
		m.front = nil
	}

	if item, ok := m.first.Next(); ok {
		m.front = NewPairWith(item, m.second.Clone())
		if p, ok := m.front.Next(); ok {
			return p, true
		}
		// second is empty, and so is the product
		m.front = nil
		return Pair[A, B]{}, false
	}

	// first is used up; finish whatever a reverse draw started.
	if m.back != nil {
		if p, ok := m.back.Next(); ok {
			return p, true
		}
		m.back = nil
	}
	return Pair[A, B]{}, false
}

// NextBack draws from the tail of first and, for each such element, from
// the tail of a fresh clone of second. It panics unless Reversible.
func (m *Mix[A, B]) NextBack() (Pair[A, B], bool) {
	first, ok := m.first.(seq.DoubleEnded[A])
	if !ok {
		panic("mix: NextBack on a Mix whose first iterator is not double-ended")
	}

	if m.back != nil {
		if p, ok := m.back.NextBack(); ok {
			return p, true
		}
		m.back = nil
	}

	if item, ok := first.NextBack(); ok {
		m.back = NewPairWith(item, m.second.Clone())
		if p, ok := m.back.NextBack(); ok {
			return p, true
		}
		m.back = nil
		return Pair[A, B]{}, false
	}

	if m.front != nil {
		if p, ok := m.front.NextBack(); ok {
			return p, true
		}
		m.front = nil
	}
	return Pair[A, B]{}, false
}

// Reversible reports whether NextBack is supported.
func (m *Mix[A, B]) Reversible() bool {
	_, first := m.first.(seq.DoubleEnded[A])
	_, second := m.second.(seq.DoubleEnded[B])
	return first && second
}

// SizeHint counts what is left of the in-progress enumerators plus a full
// traversal of second for every element still in first.
func (m *Mix[A, B]) SizeHint() seq.SizeHint {
	h := m.first.SizeHint().Mul(m.second.SizeHint())
	if m.front != nil {
		h = m.front.SizeHint().Add(h)
	}
	if m.back != nil {
		h = m.back.SizeHint().Add(h)
	}
	return h
}

// Count consumes the Mix. first is not drained when second is empty.
func (m *Mix[A, B]) Count() int {
	n := 0
	if m.front != nil {
		n = m.front.Count()
		m.front = nil
	}
	if m.back != nil {
		n = seq.SaturatingAdd(n, m.back.Count())
		m.back = nil
	}

	perItem := seq.Count[B](m.second.Clone())
	if perItem == 0 {
		return n
	}
	return seq.SaturatingAdd(n, seq.SaturatingMul(seq.Count(m.first), perItem))
}

// Fused holds whenever first is fused.
func (m *Mix[A, B]) Fused() bool {
	return seq.IsFused(m.first)
}

// All yields the remaining pairs unpacked. Ranging over it consumes m.
func (m *Mix[A, B]) All() iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		for {
			p, ok := m.Next()
			if !ok || !yield(p.First, p.Second) {
				return
			}
		}
	}
}

func (m *Mix[A, B]) Collect() []Pair[A, B] {
	return seq.Collect[Pair[A, B]](m)
}
