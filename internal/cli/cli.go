// Package cli wires the img-resize command line: the resize request on the
// root command and the generate subcommand for shell completions.
package cli

import (
	"fmt"
	"image/png"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ib-77/img-resize/internal/logger"
	"github.com/ib-77/img-resize/pkg/resize"
	"github.com/ib-77/img-resize/pkg/scale"
)

// Name is the name of the command.
const Name = "img-resize"

var pngCompression = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

var imageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tif", "tiff", "webp"}

type options struct {
	outputPath     string
	fitScale       scale.Size
	outputScale    scale.Size
	jpegQuality    int
	pngCompression string
	autoOrient     bool
	verbose        bool
}

// NewCommand returns the root command writing regular output to stdout and
// logs to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   Name + " FILE --fit-scale WIDTHxHEIGHT --output-scale WIDTHxHEIGHT",
		Short: "Extend an image by repeating it across a larger canvas",
		Long: `Extend an image by repeating it across a larger canvas.

The canvas size is the image size scaled by output-scale/fit-scale on each
axis, truncated to whole pixels. The image is copied onto the canvas left to
right and top to bottom, and a copy that would not fit entirely is left out.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return imageExtensions, cobra.ShellCompDirectiveFilterFileExt
		},
		PreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResize(cmd, args[0], opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputPath, "output-path", "o", "", "output image path; overwrites FILE if not provided")
	flags.Var(&opts.fitScale, "fit-scale", "the scale (arbitrary units) of the image currently")
	flags.Var(&opts.outputScale, "output-scale", "the scale to extend the image to, in relation to --fit-scale")
	flags.IntVar(&opts.jpegQuality, "jpeg-quality", resize.DefaultSaveOptions().JPEGQuality, "JPEG output quality, 1-100")
	flags.StringVar(&opts.pngCompression, "png-compression", "default", "PNG compression: "+strings.Join(compressionNames(), ", "))
	flags.BoolVar(&opts.autoOrient, "auto-orient", false, "apply the EXIF orientation of FILE before tiling")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every pipeline stage")

	cobra.CheckErr(cmd.MarkFlagRequired("fit-scale"))
	cobra.CheckErr(cmd.MarkFlagRequired("output-scale"))
	cobra.CheckErr(cmd.MarkFlagFilename("output-path", imageExtensions...))
	cobra.CheckErr(cmd.RegisterFlagCompletionFunc("png-compression",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return compressionNames(), cobra.ShellCompDirectiveNoFileComp
		}))

	cmd.AddCommand(newGenerateCommand())
	return cmd
}

func (o *options) validate() error {
	if o.jpegQuality < 1 || o.jpegQuality > 100 {
		return fmt.Errorf("invalid --jpeg-quality %d: must be between 1 and 100", o.jpegQuality)
	}
	if _, ok := pngCompression[o.pngCompression]; !ok {
		return fmt.Errorf("invalid --png-compression %q: must be one of %s",
			o.pngCompression, strings.Join(compressionNames(), ", "))
	}
	return nil
}

func runResize(cmd *cobra.Command, input string, opts *options) error {
	log := logger.New(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = log.Sync() }()

	ctx := resize.WithLoadOptions(cmd.Context(), resize.LoadOptions{AutoOrientation: opts.autoOrient})
	ctx = resize.WithSaveOptions(ctx, resize.SaveOptions{
		JPEGQuality:    opts.jpegQuality,
		PNGCompression: pngCompression[opts.pngCompression],
	})

	_, err := resize.Run(ctx, resize.Request{
		InputPath:  input,
		OutputPath: opts.outputPath,
		Fit:        opts.fitScale,
		Output:     opts.outputScale,
	}, log)
	return err
}

func compressionNames() []string {
	names := make([]string, 0, len(pngCompression))
	for name := range pngCompression {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
