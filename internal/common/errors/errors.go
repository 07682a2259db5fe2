// Package errors provides standardized error handling for the back-office API.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeUpstreamUnavailable   ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeUpstreamRequestFailed ErrorCode = "UPSTREAM_REQUEST_FAILED"
	ErrCodeUpstreamBadResponse   ErrorCode = "UPSTREAM_BAD_RESPONSE"
	ErrCodeUpstreamTimeout       ErrorCode = "UPSTREAM_TIMEOUT"

	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER"

	ErrCodeResourceNotFound ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeHandoffNotFound  ErrorCode = "HANDOFF_NOT_FOUND"
	ErrCodeHandoffExpired   ErrorCode = "HANDOFF_EXPIRED"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeAuthTokenFailed  ErrorCode = "AUTH_TOKEN_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewUpstreamUnavailableError creates a retryable connectivity error.
func NewUpstreamUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamUnavailable,
		Message:   "Upstream ATS backend unreachable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamRequestFailedError wraps a non-2xx upstream response. The
// details carry the parsed JSON error body when one was present, or an
// HTTP-status-derived message otherwise.
func NewUpstreamRequestFailedError(status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamRequestFailed,
		Message:   fmt.Sprintf("Upstream request failed with status %d", status),
		Details:   body,
		Retryable: status >= 500,
		Metadata:  map[string]interface{}{"status": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamBadResponseError creates a non-retryable decode error.
func NewUpstreamBadResponseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamBadResponse,
		Message:   "Upstream response could not be decoded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamTimeoutError creates a retryable timeout error.
func NewUpstreamTimeoutError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamTimeout,
		Message:   "Upstream request timeout",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable field validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidParameterError creates a non-retryable parameter error.
func NewInvalidParameterError(param, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidParameter,
		Message:   fmt.Sprintf("Invalid parameter '%s'", param),
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewResourceNotFoundError creates a non-retryable not-found error.
func NewResourceNotFoundError(resource, id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeResourceNotFound,
		Message:   fmt.Sprintf("%s not found", resource),
		Details:   fmt.Sprintf("id: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewHandoffNotFoundError creates a non-retryable handoff error. A missing
// token is indistinguishable from an expired one on the Redis side.
func NewHandoffNotFoundError(token string) *StandardError {
	return &StandardError{
		Code:      ErrCodeHandoffNotFound,
		Message:   "Drill-down payload not found or already consumed",
		Details:   fmt.Sprintf("token: %s", token),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache backend error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAuthTokenFailedError creates a retryable token acquisition error.
func NewAuthTokenFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAuthTokenFailed,
		Message:   "Upstream auth token acquisition failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Status Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP response statuses.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeUpstreamUnavailable:   http.StatusBadGateway,
	ErrCodeUpstreamRequestFailed: http.StatusBadGateway,
	ErrCodeUpstreamBadResponse:   http.StatusBadGateway,
	ErrCodeUpstreamTimeout:       http.StatusGatewayTimeout,
	ErrCodeValidationFailed:      http.StatusUnprocessableEntity,
	ErrCodeInvalidParameter:      http.StatusBadRequest,
	ErrCodeResourceNotFound:      http.StatusNotFound,
	ErrCodeHandoffNotFound:       http.StatusNotFound,
	ErrCodeHandoffExpired:        http.StatusGone,
	ErrCodeCacheUnavailable:      http.StatusServiceUnavailable,
	ErrCodeAuthTokenFailed:       http.StatusBadGateway,
	ErrCodeInternal:              http.StatusInternalServerError,
}

// HTTPStatus returns the response status for an error code.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable checks whether an error should be presented as retryable.
func IsRetryable(err error) bool {
	return Normalize(err).Retryable
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "UPSTREAM"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "VALIDATION") || strings.Contains(codeStr, "INVALID"):
		return "VALIDATION"
	case strings.Contains(codeStr, "HANDOFF"):
		return "HANDOFF"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "AUTH"):
		return "AUTH"
	default:
		return "OTHER"
	}
}
