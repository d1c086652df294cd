package errs

import "fmt"

// InvalidTransitionError reports a requested status that is not reachable
// from the current one.
type InvalidTransitionError struct {
	From string
	To   string
}

func NewInvalidTransitionError(from, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{From: from.String(), To: to.String()}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PermissionDeniedError reports an actor whose role does not allow the action.
type PermissionDeniedError struct {
	ActorID string
	Action  string
}

func NewPermissionDeniedError(actorID, action string) *PermissionDeniedError {
	return &PermissionDeniedError{ActorID: actorID, Action: action}
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: actor %s may not %s", ErrPermissionDenied, e.ActorID, e.Action)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}

// ConflictError reports a concurrent modification detected during an atomic write.
type ConflictError struct {
	Resource string
	ID       string
	Cause    error
}

func NewConflictError(resource, id string) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

func NewConflictErrorWithCause(resource, id string, cause error) *ConflictError {
	return &ConflictError{Resource: resource, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s was modified concurrently", ErrConflict, e.Resource, e.ID), e.Cause)
}

// Unwrap exposes the sentinel and, when set, the driver error behind the conflict.
func (e *ConflictError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrConflict}
	}
	return []error{ErrConflict, e.Cause}
}

// PersistenceFailureError reports a store that is unavailable or a write that
// could not complete. Nothing was applied.
type PersistenceFailureError struct {
	Operation string
	Cause     error
}

func NewPersistenceFailureError(operation string, cause error) *PersistenceFailureError {
	return &PersistenceFailureError{Operation: operation, Cause: cause}
}

func (e *PersistenceFailureError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrPersistenceFailure, e.Operation), e.Cause)
}

// Unwrap exposes both the sentinel and the driver error.
func (e *PersistenceFailureError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPersistenceFailure}
	}
	return []error{ErrPersistenceFailure, e.Cause}
}
