package flow

import "context"

type OptionKey string

const (
	DrainOptionKey  OptionKey = "flow_drain_options"
	WorkerOptionKey OptionKey = "flow_worker_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DrainOptions struct {
	Drain bool
}

// WithWorkers sets the number of workers Stage starts.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// WithDrain controls what a stage does with inputs still queued when the
// context is canceled: with drain they are emitted as canceled failures,
// without it they are dropped.
func WithDrain(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{Drain: drain})
}

func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsDrainEnabled(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.Drain
	}
	return defaultDrain
}
