package flow

import (
	"context"
	"sync"

	"github.com/ib-77/ropresult/pkg/rop"
)

// locomotive is one worker of a stage. It applies step to each input until
// the input closes or ctx is done.
func locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In], outCh chan<- rop.Outcome[Out],
	step func(ctx context.Context, input rop.Outcome[In]) rop.Outcome[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			cancelRemaining(ctx, inputCh, outCh)
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := step(ctx, in)

			select {
			case <-ctx.Done():
				if IsDrainEnabled(ctx, false) {
					outCh <- pr
				}
				cancelRemaining(ctx, inputCh, outCh)
				return
			case outCh <- pr:
			}
		}
	}
}

// cancelRemaining reports queued inputs as canceled failures when draining is
// enabled. A failure that was already on the railway keeps its error.
func cancelRemaining[In, Out any](ctx context.Context, inputCh <-chan rop.Outcome[In], outCh chan<- rop.Outcome[Out]) {
	if !IsDrainEnabled(ctx, false) {
		return
	}

	canceled := rop.Classify(ctx.Err())
	for in := range inputCh {
		outCh <- rop.AndThen(in, func(In) rop.Outcome[Out] {
			return rop.Fail[Out](canceled)
		})
	}
}
