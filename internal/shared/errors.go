package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrUnknownBook indicates an unrecognised ledger book id.
	ErrUnknownBook = errors.New("unknown ledger book")
	// ErrInvalidPeriod indicates a malformed declaration period.
	ErrInvalidPeriod = errors.New("declaration period invalid")
	// ErrAlreadySubmitted occurs when reopening a submitted declaration.
	ErrAlreadySubmitted = errors.New("declaration already submitted")
)
