// Package apierror pairs a machine-readable error code with the HTTP
// status the handler layer answers with. Services return model
// sentinels; handlers map them onto these.
package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

func BadRequest(code string, message string, details string) *APIError {
	return New(code, message, details, http.StatusBadRequest)
}

func Unauthorized(code string, message string) *APIError {
	return New(code, message, "", http.StatusUnauthorized)
}

func NotFound(code string, message string) *APIError {
	return New(code, message, "", http.StatusNotFound)
}

func Conflict(code string, message string) *APIError {
	return New(code, message, "", http.StatusConflict)
}

func Internal(message string) *APIError {
	return New("INTERNAL_ERROR", message, "", http.StatusInternalServerError)
}
