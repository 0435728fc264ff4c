package mix

import "fmt"

// Pair is the element type produced by PairWith and Mix.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
