// Package tile repeats an image across a larger canvas. Only whole copies
// are drawn: a copy that would cross the canvas edge is skipped rather
// than clipped.
package tile

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/ib-77/img-resize/pkg/seq"
	"github.com/ib-77/img-resize/pkg/seq/mix"
)

var ErrEmptyTile = errors.New("tile has a zero dimension")

// Grid returns how many whole tiles fit across and down base.
func Grid(base, tile image.Rectangle) (horizontal, vertical int, err error) {
	if tile.Dx() <= 0 || tile.Dy() <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrEmptyTile, tile.Dx(), tile.Dy())
	}
	return base.Dx() / tile.Dx(), base.Dy() / tile.Dy(), nil
}

// Positions enumerates the grid as (column, row) pairs: every row of
// column 0, then every row of column 1, and so on.
func Positions(base, tile image.Rectangle) (*mix.Mix[int, int], error) {
	horizontal, vertical, err := Grid(base, tile)
	if err != nil {
		return nil, err
	}
	return mix.New[int, int](seq.Upto(horizontal), seq.Upto(vertical)), nil
}

// Repeat overlays as many whole copies of tile onto base as fit, and
// returns how many it placed.
func Repeat(base draw.Image, tile image.Image) (int, error) {
	tb := tile.Bounds()
	positions, err := Positions(base.Bounds(), tb)
	if err != nil {
		return 0, err
	}

	placed := 0
	for i, j := range positions.All() {
		Overlay(base, tile, i*tb.Dx(), j*tb.Dy())
		placed++
	}
	return placed, nil
}

// Overlay composites src over dst with src's top-left corner at (x, y),
// measured from dst's top-left corner. Pixels falling outside dst are
// dropped.
func Overlay(dst draw.Image, src image.Image, x, y int) {
	sb := src.Bounds()
	at := dst.Bounds().Min.Add(image.Pt(x, y))
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(sb.Size())}, src, sb.Min, draw.Over)
}
