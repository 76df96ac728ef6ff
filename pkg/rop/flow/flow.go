package flow

import (
	"context"
	"sync"

	"github.com/ib-77/ropresult/pkg/rop"
)

const defaultWorkers = 1

// Stage applies step to every successful input using the worker count
// configured on ctx. Failed inputs are forwarded without calling step.
func Stage[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	step func(ctx context.Context, in In) rop.Outcome[Out]) <-chan rop.Outcome[Out] {
	return StageN(ctx, inputCh, step, Workers(ctx, defaultWorkers))
}

func StageN[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	step func(ctx context.Context, in In) rop.Outcome[Out], lines int) <-chan rop.Outcome[Out] {

	engine := func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out] {
		return rop.AndThen(input, func(v In) rop.Outcome[Out] { return step(ctx, v) })
	}
	return run(ctx, inputCh, engine, lines)
}

// Try is Stage for (Out, error) functions; errors are classified with
// rop.Classify.
func Try[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	try func(ctx context.Context, in In) (Out, error)) <-chan rop.Outcome[Out] {

	return Stage(ctx, inputCh, func(ctx context.Context, in In) rop.Outcome[Out] {
		out, err := try(ctx, in)
		return rop.FromPair(out, err, nil)
	})
}

// Finally maps every result to a plain value. With draining enabled it keeps
// reading until the input closes so canceled results still reach the caller.
func Finally[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, e rop.ErrorInfo) Out) <-chan Out {

	out := make(chan Out)
	drain := IsDrainEnabled(ctx, false)

	reduce := func(in rop.Outcome[In]) Out {
		return rop.Match(in,
			func(r In) Out { return onSuccess(ctx, r) },
			func(e rop.ErrorInfo) Out { return onError(ctx, e) })
	}

	go func() {
		defer close(out)

		if drain {
			for in := range inputCh {
				out <- reduce(in)
			}
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				select {
				case out <- reduce(in):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func run[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In],
	engine func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out],
	lines int) <-chan rop.Outcome[Out] {

	if lines < 1 {
		lines = defaultWorkers
	}

	out := make(chan rop.Outcome[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
