package mix

import (
	"github.com/ib-77/img-resize/pkg/seq"
)

// PairWith pairs a copy of one item with every element of an iterator.
// It has exactly as many elements as the wrapped iterator, in the same order.
type PairWith[A, B any] struct {
	item A
	it   seq.Iterator[B]
}

var _ seq.DoubleEnded[Pair[int, int]] = (*PairWith[int, int])(nil)

// NewPairWith takes ownership of it. item is copied into every pair, so A
// should be a value type or something safe to share.
func NewPairWith[A, B any](item A, it seq.Iterator[B]) *PairWith[A, B] {
	return &PairWith[A, B]{item: item, it: it}
}

func (p *PairWith[A, B]) Item() A {
	return p.item
}

func (p *PairWith[A, B]) Next() (Pair[A, B], bool) {
	v, ok := p.it.Next()
	if !ok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: p.item, Second: v}, true
}

// NextBack panics unless the wrapped iterator is seq.DoubleEnded.
func (p *PairWith[A, B]) NextBack() (Pair[A, B], bool) {
	back, ok := p.it.(seq.DoubleEnded[B])
	if !ok {
		panic("mix: NextBack on a PairWith over an iterator that is not double-ended")
	}

	v, ok := back.NextBack()
	if !ok {
		return Pair[A, B]{}, false
	}
	return Pair[A, B]{First: p.item, Second: v}, true
}

func (p *PairWith[A, B]) Reversible() bool {
	_, ok := p.it.(seq.DoubleEnded[B])
	return ok
}

func (p *PairWith[A, B]) SizeHint() seq.SizeHint {
	return p.it.SizeHint()
}

// Len panics if the wrapped iterator cannot report an exact length.
func (p *PairWith[A, B]) Len() int {
	if e, ok := p.it.(seq.ExactSize); ok {
		return e.Len()
	}
	if h := p.it.SizeHint(); h.IsExact() {
		return h.Lower
	}
	panic("mix: Len on a PairWith over an iterator without an exact size")
}

func (p *PairWith[A, B]) Count() int {
	return seq.Count(p.it)
}

func (p *PairWith[A, B]) Fused() bool {
	return seq.IsFused(p.it)
}
