package scale

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroFit  = errors.New("fit scale has a zero dimension")
	ErrTooLarge = errors.New("resolved size is too large")
)

// maxSide bounds a resolved side so that width*height pixel offsets stay
// addressable as int on every platform.
const maxSide = math.MaxInt32

// Resolve scales the source pixel dimensions by output/fit on each axis
// independently, truncating: target = source * output / fit.
func Resolve(source, fit, output Size) (Size, error) {
	if fit.Width == 0 || fit.Height == 0 {
		return Size{}, fmt.Errorf("%w: %s", ErrZeroFit, fit)
	}

	width := uint64(source.Width) * uint64(output.Width) / uint64(fit.Width)
	height := uint64(source.Height) * uint64(output.Height) / uint64(fit.Height)
	if width > maxSide || height > maxSide {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	return Size{Width: uint32(width), Height: uint32(height)}, nil
}
