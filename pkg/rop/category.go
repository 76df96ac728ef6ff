package rop

import "fmt"

// Category is the closed classification of a failure. Boundaries dispatch on
// it, never on the message.
type Category uint8

const (
	// CategoryUnknown is the zero value and never a valid classification.
	CategoryUnknown Category = iota

	// CategoryValidation means caller-supplied data was rejected.
	CategoryValidation

	// CategoryNotFound means a referenced entity is absent.
	CategoryNotFound

	// CategoryConflict means a state precondition was violated.
	CategoryConflict

	// CategoryUnauthorized means permission was denied.
	CategoryUnauthorized

	// CategoryUnexpected signals a bug or broken invariant rather than an
	// anticipated domain outcome.
	CategoryUnexpected
)

var categoryNames = [...]string{
	CategoryUnknown:      "unknown",
	CategoryValidation:   "validation",
	CategoryNotFound:     "not_found",
	CategoryConflict:     "conflict",
	CategoryUnauthorized: "unauthorized",
	CategoryUnexpected:   "unexpected",
}

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryValidation,
		CategoryNotFound,
		CategoryConflict,
		CategoryUnauthorized,
		CategoryUnexpected,
	}
}

func (c Category) Valid() bool {
	return c > CategoryUnknown && c <= CategoryUnexpected
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// ParseCategory is the inverse of Category.String for valid categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if categoryNames[c] == s {
			return c, nil
		}
	}
	return CategoryUnknown, fmt.Errorf("rop: unknown category %q", s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("rop: cannot marshal invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
