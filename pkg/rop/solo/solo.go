package solo

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
)

func Succeed[T any](input T) rop.Outcome[T] {
	return rop.Success(input)
}

func Fail[T any](e rop.ErrorInfo) rop.Outcome[T] {
	return rop.Fail[T](e)
}

// Validate checks input. A failing check returns the ErrorInfo it reports.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, reason rop.ErrorInfo)) rop.Outcome[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Outcome[T],
	validate func(ctx context.Context, in T) (valid bool, reason rop.ErrorInfo)) rop.Outcome[T] {

	return rop.AndThen(input, func(v T) rop.Outcome[T] {
		if valid, reason := validate(ctx, v); !valid {
			return rop.Fail[T](reason)
		}
		return input
	})
}

// ValidateAll runs checks against the value of input in order. With
// breakOnError it stops at the first failing check, otherwise every check
// runs and all failures are collected. A canceled context stops the run and
// is reported as an Unexpected failure.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Outcome[T],
	breakOnError bool, // exit on first error
	checks ...func(ctx context.Context, in T) rop.Outcome[T]) rop.Result[T, []rop.ErrorInfo] {

	if input.IsErr() {
		return rop.MapErr(input, func(e rop.ErrorInfo) []rop.ErrorInfo { return []rop.ErrorInfo{e} })
	}

	value := input.Unwrap()
	var failures []rop.ErrorInfo

	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return rop.Err[T](append(failures, rop.Classify(err)))
		}

		if res := check(ctx, value); res.IsErr() {
			failures = append(failures, res.UnwrapErr())
			if breakOnError {
				break
			}
		}
	}

	if len(failures) > 0 {
		return rop.Err[T](failures)
	}
	return rop.Ok[T, []rop.ErrorInfo](value)
}

func Switch[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	return rop.AndThen(input, func(v In) rop.Result[Out, E] {
		return onSuccess(ctx, v)
	})
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	return rop.Map(input, func(v In) Out {
		return onSuccess(ctx, v)
	})
}

// Try runs onTryExecute on success and classifies its error with
// rop.Classify. A context that is already done is not called into.
func Try[In, Out any](ctx context.Context, input rop.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Outcome[Out] {
	return TryClassified(ctx, input, onTryExecute, rop.Classify)
}

func TryClassified[In, Out any](ctx context.Context, input rop.Outcome[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	classify func(err error) rop.ErrorInfo) rop.Outcome[Out] {

	return rop.AndThen(input, func(v In) rop.Outcome[Out] {
		if err := ctx.Err(); err != nil {
			return rop.Fail[Out](rop.Classify(err))
		}
		out, err := onTryExecute(ctx, v)
		return rop.FromPair(out, err, classify)
	})
}

// FailOnError keeps input unless maybeErr reports an error for its value.
func FailOnError[T any](ctx context.Context, input rop.Outcome[T],
	maybeErr func(ctx context.Context, in T) error) rop.Outcome[T] {

	return rop.AndThen(input, func(v T) rop.Outcome[T] {
		if err := maybeErr(ctx, v); err != nil {
			return rop.Fail[T](rop.Classify(err))
		}
		return input
	})
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}
	return input
}

func TeeIf[T, E any](ctx context.Context,
	input rop.Result[T, E],
	condition func(ctx context.Context, r T) bool,
	onSuccessAndCondition func(ctx context.Context, r T)) rop.Result[T, E] {

	return rop.Inspect(input, func(v T) {
		if condition(ctx, v) {
			onSuccessAndCondition(ctx, v)
		}
	})
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err E)) rop.Result[T, E] {

	rop.Inspect(input, func(v T) { onSuccess(ctx, v) })
	rop.InspectErr(input, func(e E) { onError(ctx, e) })
	return input
}

func Finally[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err E) Out) Out {

	return rop.Match(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(e E) Out { return onError(ctx, e) })
}
