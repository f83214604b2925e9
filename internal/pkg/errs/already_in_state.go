package errs

import (
	"errors"
	"fmt"
)

// ErrAlreadyInState is the sentinel error for all AlreadyInStateError instances.
var ErrAlreadyInState = errors.New("already in state")

// AlreadyInStateError indicates that a state transition would be a no-op:
// the target state equals the current state. No-op transitions are rejected
// rather than silently accepted.
type AlreadyInStateError struct {
	// ParamName identifies the stateful object, e.g. "orderStatus".
	ParamName string

	// State is the state the object already holds.
	State string

	// Cause is the underlying error, if any.
	Cause error
}

// NewAlreadyInStateError creates an AlreadyInStateError without an underlying cause.
func NewAlreadyInStateError(paramName, state string) *AlreadyInStateError {
	return &AlreadyInStateError{ParamName: paramName, State: state}
}

// NewAlreadyInStateErrorWithCause creates an AlreadyInStateError wrapping an underlying cause.
func NewAlreadyInStateErrorWithCause(paramName, state string, cause error) *AlreadyInStateError {
	return &AlreadyInStateError{ParamName: paramName, State: state, Cause: cause}
}

// Error formats the message, appending the cause when present.
func (e *AlreadyInStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is already %s (cause: %s)",
			ErrAlreadyInState, e.ParamName, e.State, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is already %s", ErrAlreadyInState, e.ParamName, e.State))
}

// Unwrap returns the sentinel so errors.Is(err, ErrAlreadyInState) matches.
func (e *AlreadyInStateError) Unwrap() error {
	return ErrAlreadyInState
}
