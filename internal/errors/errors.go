// FilePath: internal/errors/errors.go
package errors

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeDataUnavailable covers failed reads and entities that
	// were required but missing (e.g. the hive vanished between lookup
	// and use). A plain not-found on a get is NOT an error, it is an
	// empty result.
	ErrorTypeDataUnavailable ErrorType = "data_unavailable"
	// ErrorTypeOperationFailure covers mutating transactions that could
	// not complete (store error, constraint violation).
	ErrorTypeOperationFailure ErrorType = "operation_failure"
	// ErrorTypeValidation covers malformed input at the API boundary.
	ErrorTypeValidation ErrorType = "validation"
)

// StoreError is the single error shape crossing any public operation
// boundary. Underlying driver errors never escape; they are wrapped here
// and only surface in logs.
type StoreError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	RequestID string    `json:"request_id,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped internal error to errors.Is/As.
func (e *StoreError) Unwrap() error {
	return e.err
}

// WithRequestID adds a request ID to the error
func (e *StoreError) WithRequestID(id string) *StoreError {
	e.RequestID = id
	return e
}

// NewDataUnavailableError creates a new data-unavailable error
func NewDataUnavailableError(msg string, err error) *StoreError {
	return &StoreError{
		Type:    ErrorTypeDataUnavailable,
		Message: msg,
		Code:    http.StatusServiceUnavailable,
		err:     err,
	}
}

// NewOperationFailureError creates a new operation-failure error
func NewOperationFailureError(msg string, err error) *StoreError {
	return &StoreError{
		Type:    ErrorTypeOperationFailure,
		Message: msg,
		Code:    http.StatusInternalServerError,
		err:     err,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(msg string, err error) *StoreError {
	return &StoreError{
		Type:    ErrorTypeValidation,
		Message: msg,
		Code:    http.StatusBadRequest,
		err:     err,
	}
}

// IsDataUnavailable checks if an error is a DataUnavailable error
func IsDataUnavailable(err error) bool {
	if storeErr, ok := err.(*StoreError); ok {
		return storeErr.Type == ErrorTypeDataUnavailable
	}
	return false
}

// IsOperationFailure checks if an error is an OperationFailure error
func IsOperationFailure(err error) bool {
	if storeErr, ok := err.(*StoreError); ok {
		return storeErr.Type == ErrorTypeOperationFailure
	}
	return false
}

// IsValidation checks if an error is a Validation error
func IsValidation(err error) bool {
	if storeErr, ok := err.(*StoreError); ok {
		return storeErr.Type == ErrorTypeValidation
	}
	return false
}
