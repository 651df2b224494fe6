package domain

import "errors"

var (
	// ErrCategoryNotFound indicates a category is absent from the catalog.
	// Callers are expected to fall back to DefaultCategory rather than
	// surface this to clients.
	ErrCategoryNotFound = errors.New("category not found")
)
