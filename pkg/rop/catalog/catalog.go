package catalog

import (
	"iter"

	"github.com/ib-77/ropresult/pkg/rop"
)

// CodeNotRegistered is the code Find reports for an unknown code.
const CodeNotRegistered = "CODE_NOT_REGISTERED"

// Catalog is a frozen set of ErrorInfo entries keyed by code. It is safe for
// concurrent use.
type Catalog struct {
	entries map[string]rop.ErrorInfo
	codes   []string
}

func (c *Catalog) Lookup(code string) (rop.ErrorInfo, bool) {
	info, ok := c.entries[code]
	return info, ok
}

// Find is Lookup on the railway: an unknown code becomes a NotFound Err.
func (c *Catalog) Find(code string) rop.Outcome[rop.ErrorInfo] {
	info, ok := c.entries[code]
	if !ok {
		return rop.Fail[rop.ErrorInfo](rop.NewErrorInfo(CodeNotRegistered,
			"error code "+code+" is not registered", rop.CategoryNotFound))
	}
	return rop.Success(info)
}

func (c *Catalog) Contains(code string) bool {
	_, ok := c.entries[code]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.codes)
}

// Codes returns the registered codes in registration order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.codes))
	copy(codes, c.codes)
	return codes
}

// All yields entries in registration order.
func (c *Catalog) All() iter.Seq[rop.ErrorInfo] {
	return func(yield func(rop.ErrorInfo) bool) {
		for _, code := range c.codes {
			if !yield(c.entries[code]) {
				return
			}
		}
	}
}
