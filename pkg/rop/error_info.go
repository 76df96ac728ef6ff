package rop

import "fmt"

// ErrorInfo describes one failure: a stable code, a human message and a
// closed category. Two values with the same Code are the same error for
// dispatch, whatever their messages say.
//
// ErrorInfo implements error so it composes with errors.Is and errors.As,
// but it is a plain comparable value and never wraps a cause.
type ErrorInfo struct {
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Category Category `json:"category"`
}

// NewErrorInfo builds an ErrorInfo outside a catalog. Prefer catalog entries
// for anything a boundary needs to dispatch on.
func NewErrorInfo(code, message string, category Category) ErrorInfo {
	return ErrorInfo{Code: code, Message: message, Category: category}
}

// Error returns "[CODE] message".
func (e ErrorInfo) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches any ErrorInfo target carrying the same code.
func (e ErrorInfo) Is(target error) bool {
	t, ok := target.(ErrorInfo)
	return ok && t.Code == e.Code
}

func (e ErrorInfo) SameAs(other ErrorInfo) bool {
	return e.Code == other.Code
}

// WithMessage returns a copy carrying a more specific message. The code and
// category are kept, so dispatch is unaffected.
func (e ErrorInfo) WithMessage(message string) ErrorInfo {
	e.Message = message
	return e
}

// WithMessagef is WithMessage with formatting.
func (e ErrorInfo) WithMessagef(format string, args ...any) ErrorInfo {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

func (e ErrorInfo) IsZero() bool {
	return e == ErrorInfo{}
}
