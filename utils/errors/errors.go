// Package errors provides structured error handling for the Fieldboard
// backend. It defines an application error type carrying code, message,
// cause and context, plus the sentinel errors used across layers.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode categorizes application errors for logging and metrics.
type ErrorCode string

const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeAuth        ErrorCode = "AUTH_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError is a structured application error with code, message, cause and
// context. It implements the error interface and supports unwrapping, so
// sentinel checks via errors.Is work through it.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Cause: cause, Context: context}
}

// ExternalAPIError creates an AppError for external service call failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// AuthError creates an AppError for session validation failures.
func AuthError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message, Cause: cause, Context: context}
}

// LogError logs an error with structured context. AppErrors contribute their
// code and context fields; plain errors are logged as-is.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil || err == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		attrs := []any{"operation", operation, "code", string(appErr.Code), "message", appErr.Message}
		if appErr.Cause != nil {
			attrs = append(attrs, "cause", appErr.Cause.Error())
		}
		for k, v := range appErr.Context {
			attrs = append(attrs, k, v)
		}
		logger.Error("application error", attrs...)
		return
	}

	logger.Error("application error", "operation", operation, "error", err.Error())
}
