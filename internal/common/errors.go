package common

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	// ErrUnsupportedFormat marks input that cannot be decoded at all.
	// Fatal for the run: no partial results are produced behind it.
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UnsupportedFormatError wraps a decode failure so the caller can abort the run.
func UnsupportedFormatError(message string, cause error) error {
	if cause == nil {
		return NewAppError("UNSUPPORTED_FORMAT", message, ErrUnsupportedFormat)
	}
	return NewAppError("UNSUPPORTED_FORMAT", message, fmt.Errorf("%w: %v", ErrUnsupportedFormat, cause))
}

// StatusFromError maps pipeline errors onto canonical gRPC codes.
func StatusFromError(err error) *status.Status {
	switch {
	case err == nil:
		return status.New(codes.OK, "")
	case errors.Is(err, ErrUnsupportedFormat):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrInvalidInput):
		return status.New(codes.InvalidArgument, err.Error())
	default:
		return status.New(codes.Internal, err.Error())
	}
}

// HTTPStatusFromError maps the canonical code onto an HTTP status for the
// daemon surface.
func HTTPStatusFromError(err error) int {
	switch StatusFromError(err).Code() {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
