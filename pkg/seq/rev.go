package seq

// Reversed swaps the ends of a DoubleEnded iterator.
type Reversed[T any] struct {
	it DoubleEnded[T]
}

var _ DoubleEnded[int] = (*Reversed[int])(nil)

func Rev[T any](it DoubleEnded[T]) *Reversed[T] {
	return &Reversed[T]{it: it}
}

func (r *Reversed[T]) Next() (T, bool) {
	return r.it.NextBack()
}

func (r *Reversed[T]) NextBack() (T, bool) {
	return r.it.Next()
}

func (r *Reversed[T]) SizeHint() SizeHint {
	return r.it.SizeHint()
}

func (r *Reversed[T]) Fused() bool {
	return IsFused(r.it)
}
