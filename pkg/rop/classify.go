package rop

import (
	"context"
	"errors"
	"reflect"

	platformerrors "github.com/jmgilman/go/errors"
)

// Codes produced by Classify for errors that carry no code of their own.
const (
	CodeUnexpected = "UNEXPECTED"
	CodeCanceled   = "CANCELED"
	CodeTimeout    = "TIMEOUT"
)

var platformCategories = map[platformerrors.ErrorCode]Category{
	platformerrors.CodeNotFound:      CategoryNotFound,
	platformerrors.CodeAlreadyExists: CategoryConflict,
	platformerrors.CodeConflict:      CategoryConflict,
	platformerrors.CodeUnauthorized:  CategoryUnauthorized,
	platformerrors.CodeForbidden:     CategoryUnauthorized,
	platformerrors.CodeInvalidInput:  CategoryValidation,
	platformerrors.CodeSchemaFailed:  CategoryValidation,
}

// Classify maps a Go error onto the ErrorInfo taxonomy.
//
// An ErrorInfo found in the chain is returned as is. A PlatformError keeps its
// code and message and gets the matching category; codes with no domain
// meaning (database, network, internal, ...) are Unexpected. Context
// cancellation and every other error are Unexpected as well.
func Classify(err error) ErrorInfo {
	if IsNil(err) {
		return NewErrorInfo(CodeUnexpected, "nil error classified", CategoryUnexpected)
	}

	var info ErrorInfo
	if errors.As(err, &info) {
		return info
	}

	var platformErr platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		category, ok := platformCategories[platformErr.Code()]
		if !ok {
			category = CategoryUnexpected
		}
		return NewErrorInfo(string(platformErr.Code()), platformErr.Message(), category)
	}

	if IsCancellationError(err) {
		code := CodeCanceled
		if errors.Is(err, context.DeadlineExceeded) {
			code = CodeTimeout
		}
		return NewErrorInfo(code, err.Error(), CategoryUnexpected)
	}

	return NewErrorInfo(CodeUnexpected, err.Error(), CategoryUnexpected)
}

// FromPair bridges a conventional (value, error) return into an Outcome.
// classify may be nil, in which case Classify is used.
func FromPair[V any](v V, err error, classify func(error) ErrorInfo) Outcome[V] {
	if IsNil(err) {
		return Success(v)
	}
	if classify == nil {
		classify = Classify
	}
	return Fail[V](classify(err))
}

// IsNil reports whether i is nil or a typed nil pointer.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// IsCancellationError reports whether err stems from a canceled or expired
// context.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
