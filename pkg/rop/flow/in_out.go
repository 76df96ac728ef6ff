package flow

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
)

// From emits every value as a success. The channel is closed when all values
// are sent or ctx is done.
func From[T any](ctx context.Context, values ...T) <-chan rop.Outcome[T] {
	results := make([]rop.Outcome[T], 0, len(values))
	for _, v := range values {
		results = append(results, rop.Success(v))
	}
	return FromResults(ctx, results...)
}

func FromResults[T any](ctx context.Context, results ...rop.Outcome[T]) <-chan rop.Outcome[T] {
	in := make(chan rop.Outcome[T])

	go func() {
		defer close(in)

		for _, r := range results {
			select {
			case in <- r:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect reads ch until it is closed. Stages close their output once the
// context is done, so Collect does not need the context itself.
func Collect[T any](ch <-chan T) []T {
	res := make([]T, 0)
	for v := range ch {
		res = append(res, v)
	}
	return res
}
