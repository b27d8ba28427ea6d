package errors

import (
	"fmt"

	"github.com/pizzariapopovici/orderapi/internal/domain"
)

// ErrNotFound indicates a resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnauthorized indicates missing or invalid credentials
type ErrUnauthorized struct {
	Message string
}

func (e *ErrUnauthorized) Error() string {
	return e.Message
}

// ErrValidation indicates a request that was rejected before any backend call
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// ErrInvalidStateTransition indicates an illegal checkout state change
type ErrInvalidStateTransition struct {
	From domain.ResolutionState
	To   domain.ResolutionState
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid state transition from %s to %s", e.From, e.To)
}

// ErrSubmissionInFlight indicates an order submission is already in progress
// for the session
type ErrSubmissionInFlight struct{}

func (e *ErrSubmissionInFlight) Error() string {
	return "an order submission is already in progress"
}
