// Package flow runs railway steps over streams of rop.Outcome values with a
// fixed number of worker goroutines per stage.
//
// Common usage:
// - From/FromResults: feed values or results into a channel
// - Stage/StageN: apply a step to every successful input; failures pass through
// - Validate, Map, Tee, Try: common steps built on Stage
// - Finally: reduce every result to a plain value
// - Collect: gather a channel into a slice
//
// Worker count and cancellation behaviour are read from the context (see
// WithWorkers and WithDrain). Results from a stage with more than one worker
// arrive in completion order, not input order.
package flow
