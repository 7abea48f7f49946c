// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return these typed errors; handlers translate them
// to HTTP status codes exactly once.
package apperrors

import "fmt"

// ValidationError signals bad or missing client input (HTTP 400)
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation creates a new ValidationError
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals an unknown record id (HTTP 404)
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound creates a new NotFoundError
func NotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// DecodeError signals an unreadable image or an image without any
// symbols (HTTP 400)
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// Decode creates a new DecodeError
func Decode(format string, args ...interface{}) error {
	return &DecodeError{Message: fmt.Sprintf(format, args...)}
}

// EncodeError signals text that cannot be rendered as a QR symbol (HTTP 400)
type EncodeError struct {
	Message string
	Err     error
}

func (e *EncodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// Encode creates a new EncodeError wrapping the encoder failure
func Encode(message string, err error) error {
	return &EncodeError{Message: message, Err: err}
}

// StorageError signals a persistence failure (HTTP 500)
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage creates a new StorageError wrapping the database failure
func Storage(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}
