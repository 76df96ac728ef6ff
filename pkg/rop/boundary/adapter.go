package boundary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ib-77/ropresult/pkg/rop"
)

const defaultGenericMessage = "an unexpected error occurred"

// ErrorBody is the serialized failure. TraceID carries the Result id.
type ErrorBody struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	TraceID  string `json:"trace_id,omitempty"`
}

// Body is the serialized response: Data on success, Error on failure.
type Body struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

type Response struct {
	Status int
	Class  Class
	Body   Body
}

type Adapter struct {
	log            *slog.Logger
	genericMessage string
}

type Option func(*Adapter)

func WithLogger(log *slog.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log
		}
	}
}

// WithGenericMessage sets the message shown for Unexpected failures.
func WithGenericMessage(message string) Option {
	return func(a *Adapter) {
		if message != "" {
			a.genericMessage = message
		}
	}
}

func New(opts ...Option) *Adapter {
	a := &Adapter{
		log:            slog.Default(),
		genericMessage: defaultGenericMessage,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Logger() *slog.Logger {
	return a.log
}

// Respond translates r with a 200 status on success.
func Respond[V any](ctx context.Context, a *Adapter, r rop.Outcome[V]) Response {
	return RespondStatus(ctx, a, r, ClassSuccess.HTTPStatus())
}

// RespondStatus translates r, using okStatus when r is Ok.
func RespondStatus[V any](ctx context.Context, a *Adapter, r rop.Outcome[V], okStatus int) Response {
	return rop.Match(r,
		func(v V) Response {
			return Response{Status: okStatus, Class: ClassSuccess, Body: Body{Data: v}}
		},
		func(e rop.ErrorInfo) Response {
			return a.failure(ctx, r.Id(), e)
		})
}

func (a *Adapter) failure(ctx context.Context, id uuid.UUID, e rop.ErrorInfo) Response {
	class := ClassOf(e.Category)

	if class == ClassServerError {
		a.log.ErrorContext(ctx, "unexpected failure",
			slog.String("result_id", id.String()),
			slog.Group("error",
				slog.String("code", e.Code),
				slog.String("message", e.Message),
				slog.String("category", e.Category.String())))

		return Response{
			Status: class.HTTPStatus(),
			Class:  class,
			Body: Body{Error: &ErrorBody{
				Code:     rop.CodeUnexpected,
				Message:  a.genericMessage,
				Category: rop.CategoryUnexpected.String(),
				TraceID:  id.String(),
			}},
		}
	}

	a.log.DebugContext(ctx, "request failed",
		slog.String("result_id", id.String()),
		slog.String("code", e.Code),
		slog.String("class", class.String()))

	return Response{
		Status: class.HTTPStatus(),
		Class:  class,
		Body: Body{Error: &ErrorBody{
			Code:     e.Code,
			Message:  e.Message,
			Category: e.Category.String(),
		}},
	}
}
