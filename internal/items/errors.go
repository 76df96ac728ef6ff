package items

import (
	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/catalog"
)

type errorSet struct {
	NameRequired     rop.ErrorInfo
	NameTooLong      rop.ErrorInfo
	QuantityNegative rop.ErrorInfo
	InvalidID        rop.ErrorInfo
	ItemNotFound     rop.ErrorInfo
	ItemExists       rop.ErrorInfo
	NotPermitted     rop.ErrorInfo
	StoreFailure     rop.ErrorInfo
	NotifyFailed     rop.ErrorInfo
}

// Errors names every failure the items service reports; Catalog holds the
// same entries for lookup by code.
var Errors, Catalog = buildErrors()

func buildErrors() (errorSet, *catalog.Catalog) {
	b := catalog.NewBuilder()

	set := errorSet{
		NameRequired:     b.MustRegister("ITEM_NAME_REQUIRED", "name is required", rop.CategoryValidation),
		NameTooLong:      b.MustRegister("ITEM_NAME_TOO_LONG", "name is too long", rop.CategoryValidation),
		QuantityNegative: b.MustRegister("ITEM_QUANTITY_NEGATIVE", "quantity must not be negative", rop.CategoryValidation),
		InvalidID:        b.MustRegister("ITEM_INVALID_ID", "item id is not a valid uuid", rop.CategoryValidation),
		ItemNotFound:     b.MustRegister("ITEM_NOT_FOUND", "item not found", rop.CategoryNotFound),
		ItemExists:       b.MustRegister("ITEM_EXISTS", "an item with this name already exists", rop.CategoryConflict),
		NotPermitted:     b.MustRegister("ITEM_NOT_PERMITTED", "not permitted to create items", rop.CategoryUnauthorized),
		StoreFailure:     b.MustRegister("ITEM_STORE_FAILURE", "item store failed", rop.CategoryUnexpected),
		NotifyFailed:     b.MustRegister("ITEM_NOTIFY_FAILED", "item notification failed", rop.CategoryUnexpected),
	}

	return set, b.MustBuild()
}
