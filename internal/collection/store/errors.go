package store

import dErrors "tastebook/pkg/domain-errors"

var (
	// ErrNotFound keeps store-level 404s consistent across the postgres and
	// in-memory implementations.
	ErrNotFound = dErrors.New(dErrors.CodeNotFound, "collection not found")
)
