package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                string
		source, fit, output Size
		want                Size
	}{
		{"non uniform", Size{200, 100}, Size{4, 2}, Size{8, 2}, Size{400, 100}},
		{"identity", Size{33, 17}, Size{1, 1}, Size{1, 1}, Size{33, 17}},
		{"truncates", Size{10, 10}, Size{3, 3}, Size{4, 5}, Size{13, 16}},
		{"shrinks", Size{100, 100}, Size{2, 4}, Size{1, 1}, Size{50, 25}},
		{"zero output", Size{100, 100}, Size{1, 1}, Size{0, 3}, Size{0, 300}},
		{"no intermediate overflow", Size{1 << 20, 1}, Size{1 << 12, 1}, Size{1 << 12, 1}, Size{1 << 20, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.source, tt.fit, tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ZeroFit(t *testing.T) {
	t.Parallel()

	for _, fit := range []Size{{0, 1}, {1, 0}, {0, 0}} {
		_, err := Resolve(Size{10, 10}, fit, Size{1, 1})
		assert.ErrorIs(t, err, ErrZeroFit)
	}
}

func TestResolve_TooLarge(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Size{1 << 20, 1}, Size{1, 1}, Size{1 << 20, 1})
	assert.ErrorIs(t, err, ErrTooLarge)
}
