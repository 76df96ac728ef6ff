package flow

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Validate fails every input that validate rejects with the ErrorInfo it
// returns.
func Validate[T any](ctx context.Context, inputCh <-chan rop.Outcome[T],
	validate func(ctx context.Context, in T) (bool, rop.ErrorInfo)) <-chan rop.Outcome[T] {

	return Stage(ctx, inputCh, func(ctx context.Context, in T) rop.Outcome[T] {
		if ok, e := validate(ctx, in); !ok {
			return rop.Fail[T](e)
		}
		return rop.Success(in)
	})
}

func Map[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	mapOnSuccess func(ctx context.Context, in In) Out) <-chan rop.Outcome[Out] {

	return Stage(ctx, inputCh, func(ctx context.Context, in In) rop.Outcome[Out] {
		return rop.Success(mapOnSuccess(ctx, in))
	})
}

// Tee calls sideEffect for every successful input and forwards it unchanged.
func Tee[T any](ctx context.Context, inputCh <-chan rop.Outcome[T],
	sideEffect func(ctx context.Context, in T)) <-chan rop.Outcome[T] {

	engine := func(ctx context.Context, input rop.Outcome[T]) rop.Outcome[T] {
		return rop.Inspect(input, func(v T) { sideEffect(ctx, v) })
	}
	return run(ctx, inputCh, engine, Workers(ctx, defaultWorkers))
}
