package rop

import (
	"context"
	"errors"
	"testing"
)

func TestStart_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, 5).Result()
	if !out.IsSuccess() || out.Result() != 5 {
		t.Fatalf("expected success with 5, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
	if out.Stage() != "" || out.IsFailure() {
		t.Fatalf("expected no stage and no failure, got stage=%q failure=%v", out.Stage(), out.IsFailure())
	}
}

func TestThen_SuccessPathChangesType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := Start(ctx, 3)
	out := Then(start, "double", func(ctx context.Context, v int) (string, error) {
		return string(rune('a' + v*2)), nil
	}).Result()

	if !out.IsSuccess() || out.Result() != "g" {
		t.Fatalf("expected success with g, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
	if out.Stage() != "double" {
		t.Fatalf("expected stage double, got %q", out.Stage())
	}
	if out.Id() != start.Result().Id() {
		t.Fatalf("expected the chain id to be carried over")
	}
}

func TestThen_FailureIsTaggedWithStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	out := Then(Start(ctx, 1), "load", func(ctx context.Context, v int) (int, error) {
		return 0, boom
	}).Result()

	if out.IsSuccess() || !out.IsFailure() {
		t.Fatalf("expected failure, got success=%v", out.IsSuccess())
	}
	if !errors.Is(out.Err(), boom) {
		t.Fatalf("expected error to wrap boom, got %v", out.Err())
	}
	var se *StageError
	if !errors.As(out.Err(), &se) || se.Stage != "load" {
		t.Fatalf("expected a StageError for load, got %v", out.Err())
	}
	if out.Err().Error() != "load: boom" {
		t.Fatalf("unexpected message %q", out.Err().Error())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failed := Then(Start(ctx, 1), "first", func(ctx context.Context, v int) (int, error) {
		return 0, errors.New("bad")
	})

	called := false
	out := Then(failed, "second", func(ctx context.Context, v int) (string, error) {
		called = true
		return "", nil
	}).Result()

	if called {
		t.Fatalf("second stage should not run after a failure")
	}
	if out.Err() == nil || out.Err().Error() != "first: bad" {
		t.Fatalf("expected failure 'first: bad', got %v", out.Err())
	}
	if out.Stage() != "first" {
		t.Fatalf("expected failing stage first, got %q", out.Stage())
	}
}

func TestThen_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	start := Start(ctx, 1)
	cancel()

	called := false
	out := Then(start, "work", func(ctx context.Context, v int) (int, error) {
		called = true
		return v, nil
	}).Result()

	if called {
		t.Fatalf("stage should not run with a cancelled context")
	}
	if !errors.Is(out.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", out.Err())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Map(Start(ctx, 5), "add", func(ctx context.Context, v int) int { return v + 3 }).Result()
	if !out.IsSuccess() || out.Result() != 8 {
		t.Fatalf("expected success with 8, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestEnsure_OnlyOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Start(ctx, 11).Ensure(func(ctx context.Context, r Result[int]) { seen = r.Result() })
	if seen != 11 {
		t.Fatalf("expected side effect with 11, got %d", seen)
	}

	called := false
	failed := Then(Start(ctx, 1), "x", func(ctx context.Context, v int) (int, error) { return 0, errors.New("x") })
	failed.Ensure(func(ctx context.Context, r Result[int]) { called = true })
	if called {
		t.Fatalf("side effect should not run on failure")
	}

	// nil callbacks should be safe
	Start(ctx, 1).Ensure(nil)
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Finally(Start(ctx, 3),
		func(ctx context.Context, v int) int { return v + 100 },
		func(ctx context.Context, err error) int { return -1 })
	if s != 103 {
		t.Fatalf("expected 103, got %d", s)
	}

	f := Finally(Then(Start(ctx, 3), "x", func(ctx context.Context, v int) (int, error) { return 0, errors.New("x") }),
		func(ctx context.Context, v int) int { return v },
		func(ctx context.Context, err error) int { return -1 })
	if f != -1 {
		t.Fatalf("expected -1 for failure, got %d", f)
	}
}

func TestThen_DoesNotDoubleWrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &StageError{Stage: "decode", Err: errors.New("bad header")}
	outer := Then(Start(ctx, 1), "load", func(ctx context.Context, v int) (int, error) { return 0, inner }).Result()
	if outer.Err().Error() != "decode: bad header" {
		t.Fatalf("unexpected message %q", outer.Err().Error())
	}
	if outer.Stage() != "load" {
		t.Fatalf("expected stage load, got %q", outer.Stage())
	}

	plain := Then(Start(ctx, 1), "", func(ctx context.Context, v int) (int, error) { return 0, errors.New("plain") }).Result()
	if plain.Err().Error() != "plain" {
		t.Fatalf("empty stage should not wrap, got %q", plain.Err().Error())
	}
}

func TestThen_CarriesIdAndStampsStages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	start := Start(ctx, 1)
	end := Then(start, "inc", func(ctx context.Context, v int) (int, error) { return v + 1, nil }).Result()
	if end.Id() != start.Result().Id() {
		t.Fatalf("id changed along the chain: %v != %v", end.Id(), start.Result().Id())
	}
	if end.CreatedAt().Before(start.Result().CreatedAt()) {
		t.Fatalf("stage result stamped before the chain started")
	}
}
