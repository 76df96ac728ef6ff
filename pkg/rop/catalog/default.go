package catalog

import (
	"errors"
	"sync/atomic"

	"github.com/ib-77/ropresult/pkg/rop"
)

var ErrAlreadyInstalled = errors.New("catalog: default catalog already installed")

var (
	empty          = &Catalog{entries: map[string]rop.ErrorInfo{}}
	defaultCatalog atomic.Pointer[Catalog]
)

// Install publishes c as the process-wide catalog. It succeeds once.
func Install(c *Catalog) error {
	if c == nil {
		return ErrInvalidEntry
	}
	if !defaultCatalog.CompareAndSwap(nil, c) {
		return ErrAlreadyInstalled
	}
	return nil
}

// Default returns the installed catalog, or an empty one before Install.
func Default() *Catalog {
	if c := defaultCatalog.Load(); c != nil {
		return c
	}
	return empty
}

// Lookup searches the default catalog.
func Lookup(code string) (rop.ErrorInfo, bool) {
	return Default().Lookup(code)
}
