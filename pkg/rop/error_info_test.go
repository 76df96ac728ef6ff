package rop

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorInfo_EqualityByCode(t *testing.T) {
	t.Parallel()

	a := NewErrorInfo("NAME_REQUIRED", "name is required", CategoryValidation)
	b := a.WithMessage("name must not be blank")

	require.True(t, a.SameAs(b))
	require.True(t, errors.Is(b, a))
	require.False(t, errors.Is(a, errBoom))
	require.Equal(t, "[NAME_REQUIRED] name must not be blank", b.Error())
}

func TestErrorInfo_As(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("layer: %w", errBoom)

	var info ErrorInfo
	require.True(t, errors.As(wrapped, &info))
	require.Equal(t, errBoom, info)
}

func TestErrorInfo_JSON(t *testing.T) {
	t.Parallel()

	in := NewErrorInfo("ITEM_NOT_FOUND", "item not found", CategoryNotFound)
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"ITEM_NOT_FOUND","message":"item not found","category":"not_found"}`, string(data))

	var out ErrorInfo
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestCategory_TextRoundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		require.True(t, c.Valid())
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		require.Equal(t, c, parsed)
	}

	require.False(t, CategoryUnknown.Valid())
	_, err := CategoryUnknown.MarshalText()
	require.Error(t, err)

	_, err = ParseCategory("teapot")
	require.Error(t, err)
	require.Equal(t, "category(42)", Category(42).String())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		code     string
		category Category
	}{
		{
			name:     "error info kept",
			err:      fmt.Errorf("wrapped: %w", errBoom),
			code:     "BOOM",
			category: CategoryUnexpected,
		},
		{
			name:     "platform not found",
			err:      platformerrors.New(platformerrors.CodeNotFound, "missing"),
			code:     "NOT_FOUND",
			category: CategoryNotFound,
		},
		{
			name:     "platform already exists",
			err:      platformerrors.Wrap(errors.New("dup key"), platformerrors.CodeAlreadyExists, "exists"),
			code:     "ALREADY_EXISTS",
			category: CategoryConflict,
		},
		{
			name:     "platform forbidden",
			err:      platformerrors.New(platformerrors.CodeForbidden, "no"),
			code:     "FORBIDDEN",
			category: CategoryUnauthorized,
		},
		{
			name:     "platform invalid input",
			err:      platformerrors.New(platformerrors.CodeInvalidInput, "bad"),
			code:     "INVALID_INPUT",
			category: CategoryValidation,
		},
		{
			name:     "platform database",
			err:      platformerrors.New(platformerrors.CodeDatabase, "down"),
			code:     "DATABASE_ERROR",
			category: CategoryUnexpected,
		},
		{
			name:     "canceled",
			err:      context.Canceled,
			code:     CodeCanceled,
			category: CategoryUnexpected,
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("call: %w", context.DeadlineExceeded),
			code:     CodeTimeout,
			category: CategoryUnexpected,
		},
		{
			name:     "plain error",
			err:      errors.New("oops"),
			code:     CodeUnexpected,
			category: CategoryUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.Equal(t, tt.code, got.Code)
			require.Equal(t, tt.category, got.Category)
		})
	}
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, FromPair(3, nil, nil).Unwrap())

	out := FromPair(0, platformerrors.New(platformerrors.CodeNotFound, "gone"), nil)
	require.Equal(t, CategoryNotFound, out.UnwrapErr().Category)

	custom := FromPair(0, errors.New("x"), func(error) ErrorInfo { return errBoom })
	require.Equal(t, errBoom, custom.UnwrapErr())
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	require.True(t, IsCancellationError(context.Canceled))
	require.True(t, IsCancellationError(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	require.False(t, IsCancellationError(errors.New("x")))
}

func TestClassify_CancellationCodes(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()

	require.Equal(t, CodeTimeout, Classify(ctx.Err()).Code)
	require.Equal(t, CodeCanceled, Classify(fmt.Errorf("step: %w", context.Canceled)).Code)
}
