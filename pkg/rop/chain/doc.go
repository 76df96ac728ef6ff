// Package chain provides a fluent wrapper around rop.Outcome[T]
// for building synchronous railway chains using solo primitives.
//
// Methods keep the value type (Then, ThenTry, Map, Validate, Ensure,
// Recover, Or, And, RepeatUntil); the package functions of the same names
// switch to a new value type. Every step is skipped once the chain holds a
// failure, so nothing after the first failing step runs.
//
//	out := chain.FromValue(ctx, input).
//		Validate(checkName).
//		Then(persist).
//		Ensure(notify, nil).
//		Result()
package chain
