package seq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Endless counts upwards from a starting value forever, wrapping around on
// overflow of T.
type Endless[T constraints.Integer] struct {
	next T
}

var _ Cloner[int] = (*Endless[int])(nil)

func From[T constraints.Integer](start T) *Endless[T] {
	return &Endless[T]{next: start}
}

func (e *Endless[T]) Next() (T, bool) {
	v := e.next
	e.next++
	return v, true
}

func (e *Endless[T]) SizeHint() SizeHint {
	return AtLeast(math.MaxInt)
}

// Fused holds vacuously: an Endless never reports exhaustion.
func (e *Endless[T]) Fused() bool {
	return true
}

func (e *Endless[T]) Clone() Iterator[T] {
	c := *e
	return &c
}
