// Package errors provides custom error types for folderchat.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidTranscript = errors.New("invalid chat history")
	ErrHistoryFailed     = errors.New("chat history request failed")
	ErrEmptyInput        = errors.New("no input provided")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// APIError represents a failure reported by the backend inside a saved response,
// e.g. {"success": false, "error": "..."} from /api/chat/history.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error [%d] at %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error at %s: %s", e.Endpoint, e.Message)
}

// Is allows comparison with sentinel errors
func (e *APIError) Is(target error) bool {
	if target == ErrHistoryFailed {
		return true
	}
	_, ok := target.(*APIError)
	return ok
}

// NewAPIError creates a new APIError
func NewAPIError(statusCode int, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// ParseError represents a chat history parsing error
type ParseError struct {
	Message string
	Path    string
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse error at %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Is allows comparison with sentinel errors
func (e *ParseError) Is(target error) bool {
	if target == ErrInvalidTranscript {
		return true
	}
	_, ok := target.(*ParseError)
	return ok
}

// NewParseError creates a new ParseError
func NewParseError(message, path string) *ParseError {
	return &ParseError{Message: message, Path: path}
}

// ConfigError represents an invalid configuration key or value
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Key, e.Message)
}

// Is allows comparison with sentinel errors
func (e *ConfigError) Is(target error) bool {
	if target == ErrInvalidConfig {
		return true
	}
	_, ok := target.(*ConfigError)
	return ok
}

// NewConfigError creates a new ConfigError
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}

// GetEndpoint returns the endpoint of an APIError in the chain, or "".
func GetEndpoint(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Endpoint
	}
	return ""
}

// GetParsePath returns the path of a ParseError in the chain, or "".
func GetParsePath(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Path
	}
	return ""
}

// IsParseError reports whether err is or wraps a ParseError.
func IsParseError(err error) bool {
	return errors.Is(err, ErrInvalidTranscript)
}

// IsAPIError reports whether err is or wraps an APIError.
func IsAPIError(err error) bool {
	return errors.Is(err, ErrHistoryFailed)
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
