package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// these into HTTP responses; services never produce user-facing text.
var (
	// ErrForbidden means the caller's role or ownership does not permit the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means the relationship already exists. Informational,
	// not a hard failure — callers surface it as a notice.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation means the input was malformed or out of range.
	ErrValidation = errors.New("validation failed")
	// ErrDependency means a collaborator call failed and the triggering
	// transition was rolled back.
	ErrDependency = errors.New("dependency failure")
)
