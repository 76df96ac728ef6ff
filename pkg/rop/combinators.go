package rop

// Map applies fn to the value of an Ok. An Err passes through untouched and
// fn is not called. fn must not be fallible; use AndThen for that.
func Map[V, V2, E any](r Result[V, E], fn func(V) V2) Result[V2, E] {
	if r.IsErr() {
		return errFrom[V2](r)
	}
	return Result[V2, E]{
		value:     fn(r.value),
		state:     stateOk,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// MapErr applies fn to the error of an Err. An Ok passes through untouched.
func MapErr[V, E, E2 any](r Result[V, E], fn func(E) E2) Result[V, E2] {
	if r.IsOk() {
		return okFrom[E2](r)
	}
	return Result[V, E2]{
		err:       fn(r.err),
		state:     stateErr,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

// AndThen sequences a fallible step. On Err it returns the same error without
// calling fn, so in a chain of AndThen calls evaluation stops at the first
// failing step.
func AndThen[V, V2, E any](r Result[V, E], fn func(V) Result[V2, E]) Result[V2, E] {
	if r.IsErr() {
		return errFrom[V2](r)
	}
	return fn(r.value)
}

// Match is the exhaustive exit from a Result: exactly one of the handlers is
// called and its return value is returned.
func Match[V, E, R any](r Result[V, E], onOk func(V) R, onErr func(E) R) R {
	if r.IsOk() {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// OrElse gives an Err a chance to recover. An Ok passes through untouched.
func OrElse[V, E, E2 any](r Result[V, E], fn func(E) Result[V, E2]) Result[V, E2] {
	if r.IsOk() {
		return okFrom[E2](r)
	}
	return fn(r.err)
}

// Inspect runs fn on the value of an Ok and returns r unchanged.
func Inspect[V, E any](r Result[V, E], fn func(V)) Result[V, E] {
	if r.IsOk() {
		fn(r.value)
	}
	return r
}

// InspectErr runs fn on the error of an Err and returns r unchanged.
func InspectErr[V, E any](r Result[V, E], fn func(E)) Result[V, E] {
	if r.IsErr() {
		fn(r.err)
	}
	return r
}

func Flatten[V, E any](r Result[Result[V, E], E]) Result[V, E] {
	return AndThen(r, func(inner Result[V, E]) Result[V, E] { return inner })
}

// Sequence collects the values of rs in order, or returns the first Err.
func Sequence[V, E any](rs []Result[V, E]) Result[[]V, E] {
	values := make([]V, 0, len(rs))
	for _, r := range rs {
		if r.IsErr() {
			return errFrom[[]V](r)
		}
		values = append(values, r.value)
	}
	return Ok[[]V, E](values)
}
