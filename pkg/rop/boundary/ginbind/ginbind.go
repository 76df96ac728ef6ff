// Package ginbind writes rop.Outcome values as gin JSON responses through a
// boundary.Adapter.
package ginbind

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/boundary"
)

// Failures reported by the request helpers. Register them in the catalog
// that serves the boundary.
var (
	ErrInvalidBody  = rop.NewErrorInfo("INVALID_BODY", "request body is invalid", rop.CategoryValidation)
	ErrMissingParam = rop.NewErrorInfo("MISSING_PARAM", "path parameter is required", rop.CategoryValidation)
)

// Write responds with r and a 200 status on success.
func Write[V any](c *gin.Context, a *boundary.Adapter, r rop.Outcome[V]) {
	WriteStatus(c, a, r, http.StatusOK)
}

func WriteStatus[V any](c *gin.Context, a *boundary.Adapter, r rop.Outcome[V], okStatus int) {
	resp := boundary.RespondStatus(c.Request.Context(), a, r, okStatus)
	if resp.Class == boundary.ClassServerError {
		_ = c.Error(r.UnwrapErr())
	}
	c.JSON(resp.Status, resp.Body)
}

// Handle adapts a handler returning an Outcome into a gin.HandlerFunc.
func Handle[V any](a *boundary.Adapter, h func(c *gin.Context) rop.Outcome[V]) gin.HandlerFunc {
	return HandleStatus(a, http.StatusOK, h)
}

func HandleStatus[V any](a *boundary.Adapter, okStatus int, h func(c *gin.Context) rop.Outcome[V]) gin.HandlerFunc {
	return func(c *gin.Context) {
		WriteStatus(c, a, h(c), okStatus)
	}
}

// BindJSON decodes and validates the request body into T.
func BindJSON[T any](c *gin.Context) rop.Outcome[T] {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		return rop.Fail[T](ErrInvalidBody.WithMessage("request body is invalid: " + err.Error()))
	}
	return rop.Success(v)
}

// Param reads a path parameter. An empty value is a Validation failure.
func Param(c *gin.Context, name string) rop.Outcome[string] {
	v := c.Param(name)
	if v == "" {
		return rop.Fail[string](ErrMissingParam.WithMessagef("path parameter %s is required", name))
	}
	return rop.Success(v)
}
