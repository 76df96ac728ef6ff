package boundary

import (
	"net/http"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Class is the response class a boundary picks for a Result.
type Class uint8

const (
	ClassSuccess Class = iota
	ClassClientError
	ClassNotFound
	ClassConflict
	ClassUnauthorized
	ClassServerError
)

var classNames = [...]string{
	ClassSuccess:      "success",
	ClassClientError:  "client_error",
	ClassNotFound:     "not_found",
	ClassConflict:     "conflict",
	ClassUnauthorized: "unauthorized",
	ClassServerError:  "server_error",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "server_error"
}

// ClassOf maps a category onto its response class. A category outside the
// closed set is treated as a server error.
func ClassOf(category rop.Category) Class {
	switch category {
	case rop.CategoryValidation:
		return ClassClientError
	case rop.CategoryNotFound:
		return ClassNotFound
	case rop.CategoryConflict:
		return ClassConflict
	case rop.CategoryUnauthorized:
		return ClassUnauthorized
	default:
		return ClassServerError
	}
}

// IsClientError reports whether the class blames the caller.
func (c Class) IsClientError() bool {
	return c >= ClassClientError && c <= ClassUnauthorized
}

func (c Class) HTTPStatus() int {
	switch c {
	case ClassSuccess:
		return http.StatusOK
	case ClassClientError:
		return http.StatusBadRequest
	case ClassNotFound:
		return http.StatusNotFound
	case ClassConflict:
		return http.StatusConflict
	case ClassUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
