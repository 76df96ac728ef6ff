package rop

import (
	"time"

	"github.com/google/uuid"
)

type state uint8

const (
	stateNone state = iota
	stateOk
	stateErr
)

// Result holds either a value (Ok) or an error (Err), never both and never
// neither. The zero Result is not a valid state; use Ok or Err.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	err       E
	state     state
}

// Outcome is a Result whose error channel carries an ErrorInfo.
type Outcome[V any] = Result[V, ErrorInfo]

func Ok[V, E any](v V) Result[V, E] {
	return Result[V, E]{
		value:     v,
		state:     stateOk,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[V, E any](e E) Result[V, E] {
	return Result[V, E]{
		err:       e,
		state:     stateErr,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Success is Ok for an Outcome.
func Success[V any](v V) Outcome[V] {
	return Ok[V, ErrorInfo](v)
}

// Fail is Err for an Outcome.
func Fail[V any](e ErrorInfo) Outcome[V] {
	return Err[V](e)
}

// errFrom moves an Err to a new value type, keeping its identity.
func errFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		state:     stateErr,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// okFrom moves an Ok to a new error type, keeping its identity.
func okFrom[E2, V, E any](from Result[V, E]) Result[V, E2] {
	return Result[V, E2]{
		value:     from.value,
		state:     stateOk,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[V, E]) mustInit(op string) {
	if r.state == stateNone {
		panic(&MisuseError{Op: op, Reason: "zero Result, construct with Ok or Err"})
	}
}

func (r Result[V, E]) IsOk() bool {
	r.mustInit("IsOk")
	return r.state == stateOk
}

func (r Result[V, E]) IsErr() bool {
	r.mustInit("IsErr")
	return r.state == stateErr
}

// Unwrap returns the value and panics with a *MisuseError when r is an Err.
// Only call it where success has already been established.
func (r Result[V, E]) Unwrap() V {
	if !r.IsOk() {
		panic(&MisuseError{Op: "Unwrap", Reason: "called on Err", Detail: r.err})
	}
	return r.value
}

// UnwrapErr returns the error and panics with a *MisuseError when r is Ok.
func (r Result[V, E]) UnwrapErr() E {
	if !r.IsErr() {
		panic(&MisuseError{Op: "UnwrapErr", Reason: "called on Ok"})
	}
	return r.err
}

func (r Result[V, E]) UnwrapOr(fallback V) V {
	if r.IsOk() {
		return r.value
	}
	return fallback
}

// Get returns the value, the error and whether r is Ok. Only one of the first
// two is meaningful.
func (r Result[V, E]) Get() (V, E, bool) {
	r.mustInit("Get")
	return r.value, r.err, r.state == stateOk
}

// Id identifies the operation that produced r. It survives Err passing
// through combinators unchanged.
func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}
