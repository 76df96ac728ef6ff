// Package catalog holds the registry of named ErrorInfo values.
//
// A catalog has two phases. During process initialization a Builder
// registers entries; registering a code twice is a configuration error.
// Build freezes the entries into a Catalog, which has no mutating methods,
// so lookups need no locking once it is shared.
//
//	var (
//		b            = catalog.NewBuilder()
//		NameRequired = b.MustRegister("NAME_REQUIRED", "name is required", rop.CategoryValidation)
//		ItemNotFound = b.MustRegister("ITEM_NOT_FOUND", "item not found", rop.CategoryNotFound)
//		Errors       = b.MustBuild()
//	)
//
// Install publishes one Catalog as the process-wide default.
package catalog
