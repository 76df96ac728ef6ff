package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ib-77/ropresult/pkg/rop"
)

var (
	ErrDuplicateCode = errors.New("catalog: duplicate code")
	ErrInvalidEntry  = errors.New("catalog: invalid entry")
	ErrSealed        = errors.New("catalog: builder already built")
)

// Builder collects catalog entries during initialization. It is not safe for
// concurrent use; register from package var blocks or init functions.
type Builder struct {
	entries map[string]rop.ErrorInfo
	codes   []string
	err     error
	sealed  bool
}

func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]rop.ErrorInfo)}
}

// Register adds an entry and returns it. The first failure is also kept and
// reported again by Build, so a caller that ignores it still fails at startup.
func (b *Builder) Register(code, message string, category rop.Category) (rop.ErrorInfo, error) {
	info := rop.NewErrorInfo(code, message, category)

	if err := b.check(info); err != nil {
		if b.err == nil {
			b.err = err
		}
		return rop.ErrorInfo{}, err
	}

	b.entries[code] = info
	b.codes = append(b.codes, code)
	return info, nil
}

// MustRegister is Register that panics on failure.
func (b *Builder) MustRegister(code, message string, category rop.Category) rop.ErrorInfo {
	info, err := b.Register(code, message, category)
	if err != nil {
		panic(err)
	}
	return info
}

// Include registers every entry of c, in c's order.
func (b *Builder) Include(c *Catalog) error {
	for _, code := range c.codes {
		info := c.entries[code]
		if _, err := b.Register(info.Code, info.Message, info.Category); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) check(info rop.ErrorInfo) error {
	switch {
	case b.sealed:
		return fmt.Errorf("register %q: %w", info.Code, ErrSealed)
	case info.Code == "" || strings.ContainsAny(info.Code, " \t\r\n"):
		return fmt.Errorf("%w: code %q must be non-empty without whitespace", ErrInvalidEntry, info.Code)
	case info.Message == "":
		return fmt.Errorf("%w: code %q has an empty message", ErrInvalidEntry, info.Code)
	case !info.Category.Valid():
		return fmt.Errorf("%w: code %q has invalid category %s", ErrInvalidEntry, info.Code, info.Category)
	}

	if existing, ok := b.entries[info.Code]; ok {
		return fmt.Errorf("%w: %q already registered as %q", ErrDuplicateCode, info.Code, existing.Message)
	}
	return nil
}

// Build freezes the registered entries. The builder is sealed afterwards.
func (b *Builder) Build() (*Catalog, error) {
	if b.sealed {
		return nil, ErrSealed
	}
	if b.err != nil {
		return nil, b.err
	}
	b.sealed = true

	entries := make(map[string]rop.ErrorInfo, len(b.entries))
	for code, info := range b.entries {
		entries[code] = info
	}
	codes := make([]string, len(b.codes))
	copy(codes, b.codes)

	return &Catalog{entries: entries, codes: codes}, nil
}

func (b *Builder) MustBuild() *Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
