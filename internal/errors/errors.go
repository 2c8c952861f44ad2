// Package errors provides the error types shared across the category audit
// backend. They support programmatic checks with errors.Is/errors.As so
// handlers and commands can map failures to the right exit path.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Aliases for the standard library helpers so call sites only need this
// package.
var (
	New = errors.New
	Is  = errors.Is
	As  = errors.As
)

// Common sentinel errors.
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrTokenRequired indicates that no access token could be obtained
	ErrTokenRequired = errors.New("access token required")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrUpstreamUnavailable indicates that the AEC Data Model API is unreachable
	// or failing
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// APIError represents a non-success HTTP response from the AEC Data Model API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	if e.StatusCode == 429 {
		return target == ErrRateLimited
	}
	if e.StatusCode >= 500 {
		return target == ErrUpstreamUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// QueryError represents a GraphQL response whose body carries an errors array.
// The HTTP exchange itself succeeded.
type QueryError struct {
	Query    string // operation name, e.g. "UsedCategories"
	Messages []string
}

// Error implements the error interface
func (e *QueryError) Error() string {
	if e.Query != "" {
		return fmt.Sprintf("GraphQL query %s failed: %s", e.Query, strings.Join(e.Messages, "; "))
	}
	return fmt.Sprintf("GraphQL query failed: %s", strings.Join(e.Messages, "; "))
}

// NewQueryError creates a new QueryError
func NewQueryError(query string, messages []string) *QueryError {
	return &QueryError{Query: query, Messages: messages}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Key     string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error for %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// AuthError represents a token acquisition or authorization failure.
type AuthError struct {
	Method  string // "static", "client_credentials"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthError) Is(target error) bool {
	return target == ErrTokenRequired
}

// NewAuthError creates a new AuthError
func NewAuthError(method, message string, err error) *AuthError {
	return &AuthError{Method: method, Message: message, Err: err}
}

// Helper functions for error checking

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsUpstreamUnavailable checks if an error indicates the API is down
func IsUpstreamUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// WrapAPI wraps an error as an APIError
func WrapAPI(statusCode int, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    err.Error(),
		Err:        err,
	}
}
