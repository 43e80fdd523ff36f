package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInconsistentData indicates stored data violates an invariant the code
// relies on (e.g. a user currency set with no default flagged). Callers should
// treat this as an internal failure worth alerting on, not a client error.
var ErrInconsistentData = errors.New("inconsistent data")
