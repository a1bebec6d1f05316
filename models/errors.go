package models

import "fmt"

type ErrorKind string

const (
	// ErrValidation covers incomplete input caught before any network
	// call (empty cart, missing address fields, bad phone number).
	ErrValidation ErrorKind = "validation"
	// ErrTransport covers non-2xx responses and network failures.
	ErrTransport ErrorKind = "transport"
	// ErrDataShape covers responses whose structure is not what the
	// caller expected.
	ErrDataShape ErrorKind = "data_shape"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

func NewTransportError(message string, err error) *AppError {
	return &AppError{Kind: ErrTransport, Message: message, Err: err}
}

func NewDataShapeError(message string, err error) *AppError {
	return &AppError{Kind: ErrDataShape, Message: message, Err: err}
}
