package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item code does not exist in the tree.
	ErrItemNotFound = errors.New("item not found")

	// ErrParentNotFound indicates the parent code given to an add or move
	// operation does not exist.
	ErrParentNotFound = errors.New("parent item not found")

	// ErrDuplicateCode indicates an item with the same code (compared
	// case-insensitively) already exists somewhere in the tree.
	ErrDuplicateCode = errors.New("duplicate item code")

	// ErrProductNotFound indicates no product matches the given
	// brand/model/variant identity.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateProduct indicates a product with the same
	// brand/model/variant identity already exists.
	ErrDuplicateProduct = errors.New("duplicate product")

	// ErrProductInUse indicates a product cannot be deleted because items
	// still reference it.
	ErrProductInUse = errors.New("product still referenced by items")

	// ErrValidation indicates a malformed code, an unregistered feature name,
	// or a feature value outside its registered domain.
	ErrValidation = errors.New("validation failed")

	// ErrCycle indicates a move that would make an item its own ancestor.
	ErrCycle = errors.New("move would create a cycle")

	// ErrEmptySearch indicates a search request with no predicates at all.
	ErrEmptySearch = errors.New("search needs at least one predicate")

	// ErrTransactionState indicates transaction misuse: beginning a nested
	// transaction, or committing/rolling back without an open one. This is a
	// programming error; it is never retried and fails the whole request.
	ErrTransactionState = errors.New("illegal transaction state")

	// ErrStorage indicates an underlying connectivity or I/O failure. The
	// enclosing transaction has been rolled back, so retrying the whole
	// operation is safe.
	ErrStorage = errors.New("storage failure")
)
