package resize

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/img-resize/pkg/imageio"
	"github.com/ib-77/img-resize/pkg/rop"
	"github.com/ib-77/img-resize/pkg/scale"
	"github.com/ib-77/img-resize/pkg/tile"
)

// maxCanvasPixels caps the target area accepted by the resolve stage, at
// four bytes per pixel.
const maxCanvasPixels = math.MaxInt32

type Request struct {
	InputPath string
	// OutputPath defaults to InputPath when empty
	OutputPath string
	Fit        scale.Size
	Output     scale.Size
}

// Destination is the path the result is saved to.
func (r Request) Destination() string {
	if r.OutputPath == "" {
		return r.InputPath
	}
	return r.OutputPath
}

// Report describes a completed run.
type Report struct {
	RunID  uuid.UUID
	Path   string
	Source scale.Size
	Target scale.Size
	Tiles  int
}

type job struct {
	req    Request
	source *image.NRGBA
	size   scale.Size
	target scale.Size
	canvas *image.NRGBA
	tiles  int
}

// Run executes req. Options are read from ctx, see WithLoadOptions and
// WithSaveOptions. A nil log discards log output.
func Run(ctx context.Context, req Request, log *zap.Logger) (Report, error) {
	if log == nil {
		log = zap.NewNop()
	}
	loadOpts := GetLoadOptions(ctx, LoadOptions{})
	saveOpts := GetSaveOptions(ctx, DefaultSaveOptions())

	start := rop.Start(ctx, job{req: req})
	log = log.With(zap.Stringer("run", start.Result().Id()))

	loaded := rop.Then(start, "load", func(_ context.Context, j job) (job, error) {
		src, err := imageio.Load(j.req.InputPath, loadOpts.decodeOptions()...)
		if err != nil {
			return j, err
		}
		b := src.Bounds()
		if uint64(b.Dx()) > math.MaxUint32 || uint64(b.Dy()) > math.MaxUint32 {
			return j, fmt.Errorf("%w: source is %dx%d", scale.ErrTooLarge, b.Dx(), b.Dy())
		}
		j.source = src
		j.size = scale.Size{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
		return j, nil
	}).Ensure(func(_ context.Context, r rop.Result[job]) {
		log.Debug("decoded source",
			zap.String("path", req.InputPath),
			zap.Stringer("size", r.Result().size))
	})

	resolved := rop.Then(loaded, "resolve", func(_ context.Context, j job) (job, error) {
		target, err := scale.Resolve(j.size, j.req.Fit, j.req.Output)
		if err != nil {
			return j, err
		}
		if uint64(target.Width)*uint64(target.Height) > maxCanvasPixels {
			return j, fmt.Errorf("%w: canvas %s", scale.ErrTooLarge, target)
		}
		j.target = target
		return j, nil
	}).Ensure(func(_ context.Context, r rop.Result[job]) {
		log.Debug("resolved target",
			zap.Stringer("fit", req.Fit),
			zap.Stringer("output", req.Output),
			zap.Stringer("target", r.Result().target))
	})

	allocated := rop.Map(resolved, "allocate", func(_ context.Context, j job) job {
		j.canvas = imageio.NewCanvas(int(j.target.Width), int(j.target.Height))
		return j
	})

	repeated := rop.Then(allocated, "repeat", func(_ context.Context, j job) (job, error) {
		n, err := tile.Repeat(j.canvas, j.source)
		j.tiles = n
		return j, err
	}).Ensure(func(_ context.Context, r rop.Result[job]) {
		log.Debug("tiled canvas", zap.Int("tiles", r.Result().tiles))
	})

	saved := rop.Then(repeated, "save", func(_ context.Context, j job) (job, error) {
		return j, imageio.Save(j.canvas, j.req.Destination(), saveOpts.encodeOptions()...)
	})

	var report Report
	err := rop.Finally(saved,
		func(_ context.Context, j job) error {
			report = Report{
				RunID:  saved.Result().Id(),
				Path:   j.req.Destination(),
				Source: j.size,
				Target: j.target,
				Tiles:  j.tiles,
			}
			log.Info("saved",
				zap.String("path", report.Path),
				zap.Stringer("size", report.Target),
				zap.Duration("elapsed", saved.Result().CreatedAt().Sub(start.Result().CreatedAt())))
			return nil
		},
		func(_ context.Context, err error) error {
			log.Debug("resize failed", zap.Error(err))
			return err
		})
	return report, err
}
