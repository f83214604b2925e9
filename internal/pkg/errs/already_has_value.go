package errs

import (
	"errors"
	"fmt"
)

// ErrAlreadyHasValue is the sentinel error for all AlreadyHasValueError instances.
var ErrAlreadyHasValue = errors.New("already has value")

// AlreadyHasValueError indicates that an assignment would be a no-op:
// the object already holds the requested value, e.g. reassigning an order
// to the table it already occupies.
type AlreadyHasValueError struct {
	// ParamName identifies the parameter, e.g. "tableNumber".
	ParamName string

	// Value is the value the object already holds.
	Value any

	// Cause is the underlying error, if any.
	Cause error
}

// NewAlreadyHasValueError creates an AlreadyHasValueError without an underlying cause.
func NewAlreadyHasValueError(paramName string, value any) *AlreadyHasValueError {
	return &AlreadyHasValueError{ParamName: paramName, Value: value}
}

// NewAlreadyHasValueErrorWithCause creates an AlreadyHasValueError wrapping an underlying cause.
func NewAlreadyHasValueErrorWithCause(paramName string, value any, cause error) *AlreadyHasValueError {
	return &AlreadyHasValueError{ParamName: paramName, Value: value, Cause: cause}
}

// Error formats the message, appending the cause when present.
func (e *AlreadyHasValueError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s is already %v (cause: %s)",
			ErrAlreadyHasValue, e.ParamName, e.Value, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s is already %v", ErrAlreadyHasValue, e.ParamName, e.Value))
}

// Unwrap returns the sentinel so errors.Is(err, ErrAlreadyHasValue) matches.
func (e *AlreadyHasValueError) Unwrap() error {
	return ErrAlreadyHasValue
}
