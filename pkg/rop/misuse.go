package rop

import "fmt"

// MisuseError is the panic value for programmer errors such as calling
// Unwrap on an Err. It is not part of the ErrorInfo taxonomy and is not
// meant to be recovered by domain code.
type MisuseError struct {
	Op     string
	Reason string
	// Detail is the error held by the Result, if any.
	Detail any
}

func (e *MisuseError) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("rop: %s %s: %v", e.Op, e.Reason, e.Detail)
	}
	return fmt.Sprintf("rop: %s %s", e.Op, e.Reason)
}
