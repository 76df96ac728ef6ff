package chain

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

// Chain wraps a rop.Outcome with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res rop.Outcome[T]
}

// Start creates a new chain from a rop.Outcome
func Start[T any](ctx context.Context, r rop.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Success(v))
}

// Result returns the underlying rop.Outcome
func (c Chain[T]) Result() rop.Outcome[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) with(r rop.Outcome[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes functions that already return rop.Outcome[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Outcome[T]) Chain[T] {
	return c.with(solo.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repository calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return c.with(solo.Try(c.ctx, c.res, try))
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.with(solo.Map(c.ctx, c.res, onSuccess))
}

func (c Chain[T]) Validate(validate func(ctx context.Context, t T) (bool, rop.ErrorInfo)) Chain[T] {
	return c.with(solo.AndValidate(c.ctx, c.res, validate))
}

// Ensure triggers side effects without changing the result. Either handler
// may be nil.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, rop.ErrorInfo)) Chain[T] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.UnwrapErr())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Unwrap())
	}
	return c
}

// Recover gives a failed chain a chance to get back on track.
func (c Chain[T]) Recover(onFailure func(ctx context.Context, e rop.ErrorInfo) rop.Outcome[T]) Chain[T] {
	return c.with(rop.OrElse(c.res, func(e rop.ErrorInfo) rop.Outcome[T] {
		return onFailure(c.ctx, e)
	}))
}

// RepeatUntil applies onSuccess at least once and keeps going while until
// reports true for the latest value. A failure ends the loop.
func (c Chain[T]) RepeatUntil(onSuccess func(ctx context.Context, t T) rop.Outcome[T],
	until func(ctx context.Context, t T) bool) Chain[T] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsErr() || !until(c.ctx, c.res.Unwrap()) {
			return c
		}
	}
}

// Or returns the first successful chain, or the first failure when none
// succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first failure among c and required, or the last chain when
// all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, rop.ErrorInfo) T) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Then chains a function that switches to rop.Outcome[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) rop.Outcome[U]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onSuccess)}
}

// Finally collapses the chain into a value of another type
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, rop.ErrorInfo) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
