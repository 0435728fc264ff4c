package resize

import (
	"context"
	"image/png"

	"github.com/disintegration/imaging"
)

type OptionKey string

const (
	LoadOptionKey OptionKey = "load_options"
	SaveOptionKey OptionKey = "save_options"
)

type LoadOptions struct {
	// AutoOrientation applies the EXIF orientation tag while decoding
	AutoOrientation bool
}

type SaveOptions struct {
	// JPEGQuality ranges over 1-100
	JPEGQuality    int
	PNGCompression png.CompressionLevel
}

func DefaultSaveOptions() SaveOptions {
	return SaveOptions{JPEGQuality: 95, PNGCompression: png.DefaultCompression}
}

func WithLoadOptions(ctx context.Context, opts LoadOptions) context.Context {
	return context.WithValue(ctx, LoadOptionKey, opts)
}

func WithSaveOptions(ctx context.Context, opts SaveOptions) context.Context {
	return context.WithValue(ctx, SaveOptionKey, opts)
}

func GetLoadOptions(ctx context.Context, defaultOptions LoadOptions) LoadOptions {
	options, ok := ctx.Value(LoadOptionKey).(LoadOptions)
	if ok {
		return options
	}
	return defaultOptions
}

func GetSaveOptions(ctx context.Context, defaultOptions SaveOptions) SaveOptions {
	options, ok := ctx.Value(SaveOptionKey).(SaveOptions)
	if ok {
		return options
	}
	return defaultOptions
}

func (o LoadOptions) decodeOptions() []imaging.DecodeOption {
	return []imaging.DecodeOption{imaging.AutoOrientation(o.AutoOrientation)}
}

func (o SaveOptions) encodeOptions() []imaging.EncodeOption {
	return []imaging.EncodeOption{
		imaging.JPEGQuality(o.JPEGQuality),
		imaging.PNGCompressionLevel(o.PNGCompression),
	}
}
