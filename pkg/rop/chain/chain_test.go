package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ropresult/pkg/rop"
)

var (
	errBoom = rop.NewErrorInfo("BOOM", "boom", rop.CategoryUnexpected)
	errBad  = rop.NewErrorInfo("BAD", "bad", rop.CategoryValidation)
)

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Success(10))
	out := c.Result()
	if !out.IsOk() || out.Unwrap() != 10 {
		t.Fatalf("expected success with 10, got %+v", out)
	}
	if c.Context() != ctx {
		t.Fatalf("expected chain to keep its context")
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 7).Result()
	if !out.IsOk() || out.Unwrap() != 7 {
		t.Fatalf("expected success with 7, got %+v", out)
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	out := FromValue(context.Background(), 3).
		Then(func(ctx context.Context, v int) rop.Outcome[int] { return rop.Success(v * 2) }).
		Result()
	if out.Unwrap() != 6 {
		t.Fatalf("expected 6, got %d", out.Unwrap())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	called := false
	out := Start(context.Background(), rop.Fail[int](errBoom)).
		Then(func(ctx context.Context, v int) rop.Outcome[int] {
			called = true
			return rop.Success(v + 1)
		}).
		Map(func(ctx context.Context, v int) int {
			called = true
			return v
		}).
		Result()

	if called {
		t.Fatalf("no step may run after a failure")
	}
	if out.UnwrapErr() != errBoom {
		t.Fatalf("expected BOOM, got %v", out.UnwrapErr())
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := FromValue(ctx, 4).
		ThenTry(func(ctx context.Context, v int) (int, error) { return v * v, nil }).
		Result()
	if ok.Unwrap() != 16 {
		t.Fatalf("expected 16, got %d", ok.Unwrap())
	}

	failed := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if got := failed.UnwrapErr(); got.Category != rop.CategoryUnexpected || got.Message != "try-error" {
		t.Fatalf("expected unexpected try-error, got %+v", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	positive := func(_ context.Context, v int) (bool, rop.ErrorInfo) { return v > 0, errBad }

	if out := FromValue(context.Background(), 1).Validate(positive).Result(); !out.IsOk() {
		t.Fatalf("expected success, got %v", out.UnwrapErr())
	}
	if out := FromValue(context.Background(), -1).Validate(positive).Result(); out.UnwrapErr() != errBad {
		t.Fatalf("expected BAD, got %+v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var okSeen int
	var errSeen rop.ErrorInfo
	onOk := func(_ context.Context, v int) { okSeen = v }
	onErr := func(_ context.Context, e rop.ErrorInfo) { errSeen = e }

	out := FromValue(ctx, 11).Ensure(onOk, onErr).Result()
	if out.Unwrap() != 11 || okSeen != 11 || !errSeen.IsZero() {
		t.Fatalf("expected success side effect only, got ok=%d err=%v", okSeen, errSeen)
	}

	okSeen = 0
	out = Start(ctx, rop.Fail[int](errBad)).Ensure(onOk, onErr).Result()
	if out.UnwrapErr() != errBad || okSeen != 0 || errSeen != errBad {
		t.Fatalf("expected failure side effect only, got ok=%d err=%v", okSeen, errSeen)
	}

	// nil handlers are allowed
	FromValue(ctx, 1).Ensure(nil, nil)
	Start(ctx, rop.Fail[int](errBad)).Ensure(nil, nil)
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, rop.Fail[int](errBad)).
		Recover(func(ctx context.Context, e rop.ErrorInfo) rop.Outcome[int] { return rop.Success(0) }).
		Result()
	if out.Unwrap() != 0 {
		t.Fatalf("expected recovery to 0, got %+v", out)
	}

	called := false
	FromValue(ctx, 1).Recover(func(ctx context.Context, e rop.ErrorInfo) rop.Outcome[int] {
		called = true
		return rop.Success(2)
	})
	if called {
		t.Fatalf("Recover must not run on success")
	}
}

func TestRepeatUntil(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 0).
		RepeatUntil(
			func(ctx context.Context, v int) rop.Outcome[int] { return rop.Success(v + 1) },
			func(ctx context.Context, v int) bool { return v < 5 }).
		Result()
	if out.Unwrap() != 5 {
		t.Fatalf("expected 5, got %d", out.Unwrap())
	}

	failing := FromValue(ctx, 0).
		RepeatUntil(
			func(ctx context.Context, v int) rop.Outcome[int] {
				if v == 2 {
					return rop.Fail[int](errBad)
				}
				return rop.Success(v + 1)
			},
			func(ctx context.Context, v int) bool { return true }).
		Result()
	if failing.UnwrapErr() != errBad {
		t.Fatalf("expected BAD to end the loop, got %+v", failing)
	}
}

func TestOrAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	okA := FromValue(ctx, 1)
	okB := FromValue(ctx, 2)
	bad := Start(ctx, rop.Fail[int](errBad))
	boom := Start(ctx, rop.Fail[int](errBoom))

	if got := bad.Or(boom, okB).Result(); got.Unwrap() != 2 {
		t.Fatalf("Or: expected first success 2, got %+v", got)
	}
	if got := bad.Or(boom).Result(); got.UnwrapErr() != errBad {
		t.Fatalf("Or: expected first failure BAD, got %+v", got)
	}
	if got := okA.And(okB).Result(); got.Unwrap() != 2 {
		t.Fatalf("And: expected last success 2, got %+v", got)
	}
	if got := okA.And(boom, bad).Result(); got.UnwrapErr() != errBoom {
		t.Fatalf("And: expected first failure BOOM, got %+v", got)
	}
}

func TestPackageFuncs_ChangeType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	s := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	if s.Result().Unwrap() != "n:5" {
		t.Fatalf("expected n:5, got %q", s.Result().Unwrap())
	}

	parsed := ThenTry(FromValue(ctx, "12"), func(ctx context.Context, v string) (int, error) {
		return strconv.Atoi(v)
	})
	if parsed.Result().Unwrap() != 12 {
		t.Fatalf("expected 12, got %+v", parsed.Result())
	}

	called := false
	skipped := Then(Start(ctx, rop.Fail[int](errBoom)), func(ctx context.Context, v int) rop.Outcome[string] {
		called = true
		return rop.Success("x")
	})
	if called || skipped.Result().UnwrapErr() != errBoom {
		t.Fatalf("Then must skip on failure")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onOk := func(ctx context.Context, v int) string { return "ok" }
	onErr := func(ctx context.Context, e rop.ErrorInfo) string { return "fail" }

	if s := Finally(FromValue(ctx, 2), onOk, onErr); s != "ok" {
		t.Fatalf("expected ok, got %q", s)
	}
	if f := Finally(Start(ctx, rop.Fail[int](errBad)), onOk, onErr); f != "fail" {
		t.Fatalf("expected fail, got %q", f)
	}

	same := FromValue(ctx, 2).Finally(
		func(ctx context.Context, v int) int { return v * 10 },
		func(ctx context.Context, e rop.ErrorInfo) int { return -1 })
	if same != 20 {
		t.Fatalf("expected 20, got %d", same)
	}
}
