package rop

import (
	"time"

	"github.com/google/uuid"
)

// Status is satisfied by every Result regardless of its type parameters.
type Status interface {
	// IsOk returns true if the operation succeeded
	IsOk() bool
	// IsErr returns true if the operation failed
	IsErr() bool
	// Id traces the producing operation
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider defines an interface for types that can hand out a value or an error.
type ValueProvider[V, E any] interface {
	Status
	Get() (V, E, bool)
}

var (
	_ Status                        = Result[int, ErrorInfo]{}
	_ ValueProvider[int, ErrorInfo] = Result[int, ErrorInfo]{}
)
