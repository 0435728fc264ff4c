package seq

// Slice iterates a slice without copying it.
type Slice[T any] struct {
	items []T
	front int
	back  int
}

var (
	_ DoubleEnded[int] = (*Slice[int])(nil)
	_ Cloner[int]      = (*Slice[int])(nil)
	_ ExactSize        = (*Slice[int])(nil)
)

func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items, back: len(items)}
}

// Of is FromSlice for variadic arguments.
func Of[T any](items ...T) *Slice[T] {
	return FromSlice(items)
}

func (s *Slice[T]) Next() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	v := s.items[s.front]
	s.front++
	return v, true
}

func (s *Slice[T]) NextBack() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	s.back--
	return s.items[s.back], true
}

func (s *Slice[T]) SizeHint() SizeHint {
	return Exact(s.Len())
}

func (s *Slice[T]) Len() int {
	return s.back - s.front
}

func (s *Slice[T]) Count() int {
	n := s.Len()
	s.front = s.back
	return n
}

func (s *Slice[T]) Fused() bool {
	return true
}

func (s *Slice[T]) Clone() Iterator[T] {
	c := *s
	return &c
}
