package rop

import (
	"context"
)

// Chain is a run of named stages sharing one ctx. Its Result is the output
// of the last stage, or the first failure tagged with its stage name.
type Chain[T any] struct {
	ctx    context.Context
	result Result[T]
}

// Start opens a chain on value. The id it draws is inherited by every later
// stage result.
func Start[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: Success(value)}
}

func (c *Chain[T]) Result() Result[T] {
	return c.result
}

// Then runs onSuccess as the stage named stage. An error it returns, or
// ctx.Err() when ctx is already done, is wrapped in a *StageError naming
// stage. Once the chain has failed later stages are skipped and the first
// failure is carried forward unchanged.
func Then[T, U any](c *Chain[T], stage string, onSuccess func(context.Context, T) (U, error)) *Chain[U] {
	if !c.result.IsSuccess() {
		return &Chain[U]{ctx: c.ctx, result: carry[T, U](c.result)}
	}

	var zero U
	if err := c.ctx.Err(); err != nil {
		return &Chain[U]{ctx: c.ctx, result: next(c.result, stage, zero, err)}
	}

	out, err := onSuccess(c.ctx, c.result.Result())
	return &Chain[U]{ctx: c.ctx, result: next(c.result, stage, out, err)}
}

// Map is Then for a stage that cannot fail. It still records stage and
// still stops on a cancelled ctx.
func Map[T, U any](c *Chain[T], stage string, onSuccess func(context.Context, T) U) *Chain[U] {
	return Then(c, stage, func(ctx context.Context, t T) (U, error) {
		return onSuccess(ctx, t), nil
	})
}

// Ensure calls onSuccess with the last stage result if no stage has failed.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, Result[T])) *Chain[T] {
	if c.result.IsSuccess() && onSuccess != nil {
		onSuccess(c.ctx, c.result)
	}
	return c
}

// Finally ends the chain: onSuccess gets the last stage output, onFailure
// the stage-tagged error.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	if c.result.IsSuccess() {
		return onSuccess(c.ctx, c.result.Result())
	}
	return onFailure(c.ctx, c.result.Err())
}
