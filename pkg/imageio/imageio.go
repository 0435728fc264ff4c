// Package imageio loads, allocates and saves the images the resizer works
// on. Decoding recognises png, jpeg, gif, bmp, tiff and webp; encoding picks
// the format from the destination file extension.
package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path into an 8-bit non-premultiplied RGBA buffer.
func Load(path string, opts ...imaging.DecodeOption) (*image.NRGBA, error) {
	img, err := imaging.Open(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// NewCanvas returns a fully transparent width x height image.
func NewCanvas(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.NRGBA{})
}

// Save encodes img to path. The image is written to a pending file next
// to path and renamed over it, so path is either fully replaced or left
// untouched. An existing file keeps its permissions, a new one gets 0644.
func Save(img image.Image, path string, opts ...imaging.EncodeOption) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	pf, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer pf.Cleanup()

	if err := imaging.Encode(pf, img, format, opts...); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
