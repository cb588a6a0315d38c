package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrAccountNotFound indicates that an account referenced by a ledger entry
// does not exist. Kept distinct from ErrNotFound so handlers can blame the
// reference rather than the entry being mutated.
var ErrAccountNotFound = errors.New("referenced account not found")

// ErrInvalidAmount indicates that a monetary amount could not be parsed
// from the supplied input.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidReference indicates that an account reference could not be
// parsed as an integer id.
var ErrInvalidReference = errors.New("invalid account reference")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that the request conflicts with the current state
// of the resource.
var ErrConflict = errors.New("conflicting state")
