package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StageError records which stage of a chain failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	stage     string
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		isSuccess: true,
	}
}

// next continues a chain: the produced result inherits the id of from.
func next[In, Out any](from Result[In], stage string, out Out, err error) Result[Out] {
	r := Result[Out]{
		id:        from.id,
		createdAt: time.Now().UTC(),
		stage:     stage,
	}
	if err != nil {
		r.err = tagStage(stage, err)
		return r
	}
	r.result = out
	r.isSuccess = true
	return r
}

// carry moves a failure onto another value type unchanged.
func carry[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		stage:     from.stage,
		err:       from.err,
	}
}

// tagStage wraps err in a *StageError unless stage is empty or err already
// carries one.
func tagStage(stage string, err error) error {
	if stage == "" {
		return err
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: stage, Err: err}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// Stage is the name of the stage that produced r, empty for a chain's start.
func (r Result[T]) Stage() string {
	return r.stage
}

// CreatedAt is when the stage that produced r finished.
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
