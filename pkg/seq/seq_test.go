package seq

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_ForwardAndBack(t *testing.T) {
	t.Parallel()

	r := NewRange(2, 6)
	require.Equal(t, Exact(4), r.SizeHint())

	v, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = r.NextBack()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	if diff := cmp.Diff([]int{3, 4}, Collect[int](r)); diff != "" {
		t.Fatalf("remaining elements mismatch (-want +got):\n%s", diff)
	}

	_, ok = r.Next()
	assert.False(t, ok)
	_, ok = r.NextBack()
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestRange_EmptyWhenStartNotBeforeEnd(t *testing.T) {
	t.Parallel()

	for _, r := range []*Range[int]{NewRange(3, 3), NewRange(5, 1)} {
		assert.Equal(t, Exact(0), r.SizeHint())
		_, ok := r.Next()
		assert.False(t, ok)
	}
}

func TestRange_LenDoesNotOverflowNarrowTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 255, NewRange[int8](-128, 127).Len())
	assert.Equal(t, 255, Upto[uint8](255).Len())

	r := NewRange[int64](math.MinInt64, math.MaxInt64)
	assert.False(t, r.SizeHint().Bounded)
	assert.Equal(t, math.MaxInt, r.SizeHint().Lower)
}

func TestRange_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	r := Upto(3)
	_, _ = r.Next()
	c := r.Clone()

	assert.Equal(t, []int{1, 2}, Collect(c))
	assert.Equal(t, 2, r.Len())
}

func TestRange_CountConsumes(t *testing.T) {
	t.Parallel()

	r := Upto(10)
	assert.Equal(t, 10, Count[int](r))
	_, ok := r.Next()
	assert.False(t, ok)
	assert.True(t, IsFused(r))
}

func TestSlice(t *testing.T) {
	t.Parallel()

	s := Of("a", "b", "c")
	assert.Equal(t, 3, s.Len())

	back, ok := s.NextBack()
	require.True(t, ok)
	assert.Equal(t, "c", back)

	c := s.Clone()
	assert.Equal(t, []string{"a", "b"}, Collect(c))
	assert.Equal(t, 2, s.Len())
}

func TestEndless(t *testing.T) {
	t.Parallel()

	e := From(7)
	assert.Equal(t, AtLeast(math.MaxInt), e.SizeHint())

	var got []int
	for v := range All[int](e) {
		if len(got) == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 8, 9}, got)
}

func TestRev(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{4, 3, 2, 1, 0}, Collect[int](Rev[int](Upto(5))))
}

func TestCount_DrainsWithoutCounter(t *testing.T) {
	t.Parallel()

	it := Rev[int](Upto(4))
	assert.Equal(t, 4, Count[int](it))
}
