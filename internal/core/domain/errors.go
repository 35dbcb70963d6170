package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown MIME type or normaliser type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownStrategy indicates no counting strategy is registered under a name.
	ErrUnknownStrategy = errors.New("unknown counting strategy")

	// ErrStrategyMismatch indicates two counting strategies disagreed on the same text.
	ErrStrategyMismatch = errors.New("counting strategies disagree")

	// ErrInvalidSetting indicates a configuration value is out of range.
	ErrInvalidSetting = errors.New("invalid setting")
)
