package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorType represents the category of error that occurred during a fetch operation
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429), typically bot blocking
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates the document was received but is unusable
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// FetchError describes why a document could not be retrieved
type FetchError struct {
	Type       ErrorType
	URL        string
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d) fetching %s: %s", e.Type, e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("%s error fetching %s: %s", e.Type, e.URL, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// NewNetworkError creates a network error
func NewNetworkError(url string, cause error) *FetchError {
	return &FetchError{
		Type:      ErrorTypeNetwork,
		URL:       url,
		Retryable: true,
		Message:   "network request failed",
		Cause:     cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(url string, cause error) *FetchError {
	return &FetchError{
		Type:      ErrorTypeTimeout,
		URL:       url,
		Retryable: true,
		Message:   "request timed out",
		Cause:     cause,
	}
}

// NewValidationError creates a validation error for a document that arrived but cannot be used
func NewValidationError(url, message string, cause error) *FetchError {
	return &FetchError{
		Type:    ErrorTypeValidation,
		URL:     url,
		Message: message,
		Cause:   cause,
	}
}

// ClassifyHTTPError classifies a non-2xx status code into a FetchError
func ClassifyHTTPError(url string, statusCode int) *FetchError {
	e := &FetchError{URL: url, StatusCode: statusCode}
	switch {
	case statusCode == http.StatusTooManyRequests:
		e.Type, e.Retryable, e.Message = ErrorTypeRateLimit, true, "rate limit exceeded"
	case statusCode >= 500:
		e.Type, e.Retryable, e.Message = ErrorTypeServer, true, "server returned an error"
	case statusCode >= 400:
		e.Type, e.Message = ErrorTypeClient, fmt.Sprintf("client error: HTTP %d", statusCode)
	default:
		e.Type, e.Message = ErrorTypeUnknown, fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return e
}

// ClassifyTransportError wraps an error returned before any response arrived
func ClassifyTransportError(url string, err error) *FetchError {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewTimeoutError(url, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return NewTimeoutError(url, err)
	default:
		return NewNetworkError(url, err)
	}
}
