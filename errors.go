package tradelog

import "errors"

// Sentinel errors for the store. They are always wrapped with context using
// fmt.Errorf and %w, so callers match them with errors.Is.
var (
	// ErrAlreadyInitialized is returned by New when the data directory is
	// already initialized and force was not requested.
	ErrAlreadyInitialized = errors.New("data directory already initialized")

	// ErrNotInitialized is returned by Open when the data directory or one
	// of its required files does not exist.
	ErrNotInitialized = errors.New("data directory not initialized")

	// ErrFormat is returned when a stored line cannot be parsed. It denotes
	// structural corruption: the operation aborts instead of skipping.
	ErrFormat = errors.New("format error")

	// ErrDuplicateSymbol is returned when a stock symbol is declared twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrUnknownSymbol is returned when a trade references a symbol that is
	// not declared in the registry.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidQuantity is returned when a trade quantity is not strictly
	// positive.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidPrice is returned when a trade price is negative.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrOversell is returned when replaying a stock's trades drives its
	// running held quantity negative.
	ErrOversell = errors.New("oversell")
)
