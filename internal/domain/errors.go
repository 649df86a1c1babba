package domain

import "errors"

var (
	ErrInfluencerNotFound = errors.New("influencer not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError carries the client-facing message for a rejected payload.
// Messages are in the operator's language; only the status code is contract.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
