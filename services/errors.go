package services

import "errors"

// Failure kinds surfaced to controllers. Controllers translate these into
// HTTP statuses; services never write responses themselves.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("insufficient permissions")
	ErrInvalidTransition = errors.New("status transition not allowed from current status")
	ErrValidation        = errors.New("validation failed")
	ErrConflict          = errors.New("conflicting concurrent update")
)
