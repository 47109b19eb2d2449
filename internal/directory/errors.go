package directory

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// Error types for directory operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates a request timeout
	ErrTypeTimeout
	// ErrTypeHTTP indicates an HTTP-level error (unexpected status code)
	ErrTypeHTTP
	// ErrTypeParse indicates a parsing error (malformed JSON body)
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DirectoryError represents an error that occurred while talking to the
// character directory
type DirectoryError struct {
	Type       ErrorType // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a network-level error, classifying timeouts
// and DNS failures from the underlying error
func NewNetworkError(message string, err error) *DirectoryError {
	if err != nil {
		if os.IsTimeout(err) {
			return &DirectoryError{
				Type:    ErrTypeTimeout,
				Message: message,
				Err:     err,
			}
		}

		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return &DirectoryError{
				Type:    ErrTypeTimeout,
				Message: message,
				Err:     err,
			}
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return &DirectoryError{
				Type:    ErrTypeNetwork,
				Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
				Err:     err,
			}
		}
	}

	return &DirectoryError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, message string) *DirectoryError {
	return &DirectoryError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewParseError creates a parsing error
func NewParseError(message string, err error) *DirectoryError {
	return &DirectoryError{
		Type:    ErrTypeParse,
		Message: message,
		Err:     err,
	}
}

// IsNetworkError checks if an error is a network error (including timeouts)
func IsNetworkError(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Type == ErrTypeNetwork || dirErr.Type == ErrTypeTimeout
	}
	return false
}

// IsTimeoutError checks if an error is a timeout
func IsTimeoutError(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Type == ErrTypeTimeout
	}
	return false
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Type == ErrTypeHTTP
	}
	return false
}

// IsParseError checks if an error is a parse error
func IsParseError(err error) bool {
	var dirErr *DirectoryError
	if errors.As(err, &dirErr) {
		return dirErr.Type == ErrTypeParse
	}
	return false
}

// GetShortErrorMessage returns a concise, user-friendly error message
// suitable for inline display in the TUI
func GetShortErrorMessage(err error) string {
	var dirErr *DirectoryError
	if !errors.As(err, &dirErr) {
		return err.Error()
	}

	switch dirErr.Type {
	case ErrTypeTimeout:
		return "Directory not responding (timeout)"
	case ErrTypeNetwork:
		return "Network error - check connection"
	case ErrTypeHTTP:
		return fmt.Sprintf("Directory error (HTTP %d)", dirErr.StatusCode)
	case ErrTypeParse:
		return "Failed to parse directory response"
	default:
		return dirErr.Message
	}
}
