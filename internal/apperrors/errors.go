package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested operation conflicts with the current
// state of the resource (e.g. an invalid state transition).
var ErrConflict = errors.New("operation conflicts with current state")

// ErrForbidden indicates the authenticated actor lacks the role capability
// required for the requested operation.
var ErrForbidden = errors.New("operation not permitted for this role")

// ErrUnauthorized indicates the request carries no valid authenticated actor.
var ErrUnauthorized = errors.New("authentication required")

// ErrInternal indicates an unexpected internal failure (persistence, audit write).
var ErrInternal = errors.New("internal error")
