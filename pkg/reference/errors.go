package reference

import "errors"

var (
	// ErrInvalidTables is returned when a tables document cannot be turned into usable tables.
	ErrInvalidTables = errors.New("invalid reference tables")

	// ErrInvalidPattern is returned when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
