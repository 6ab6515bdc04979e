package client

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for session state.
var (
	// ErrNoRefreshToken is returned when a 401 cannot be recovered because
	// the store holds no refresh token. The session is cleared when this
	// happens.
	ErrNoRefreshToken = errors.New("no refresh token available")
)

// Default user-facing messages per status code, used when the backend sends
// no usable error body. The wording matches what StaffSync users see.
var statusMessages = map[int]string{
	400: "Invalid request. Please check your input.",
	401: "Unauthorized. Please login again.",
	403: "You do not have permission to perform this action.",
	404: "Resource not found.",
	422: "Validation failed. Please check your input.",
	500: "Server error. Please try again later.",
}

const (
	genericErrorMessage    = "An error occurred"
	validationErrorMessage = "Validation error"
)

// APIError is a non-2xx backend response. It carries everything needed to
// map the failure to a user-facing message; transport failures (no response
// at all) are plain wrapped errors, never *APIError.
type APIError struct {
	StatusCode int
	Method     string
	Path       string

	// Err is the structured error object, when the body carried one.
	Err *ErrorDetail
	// Detail is the backend's plain "detail" string, when the body carried
	// one instead of an envelope.
	Detail string
	// Body is the raw response body.
	Body []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message())
}

// Message maps the failure to a human-readable message using a fixed
// precedence: first validation detail's msg (or "Validation error" when the
// entry has none), then the structured error message, then the plain detail
// string, then a canned per-status message, then a generic fallback.
// Deterministic and total.
func (e *APIError) Message() string {
	if e.Err != nil {
		// A present validation array always wins, even when its first entry
		// carries no msg.
		if details := e.Err.ValidationDetails(); len(details) > 0 {
			if details[0].Msg != "" {
				return details[0].Msg
			}
			return validationErrorMessage
		}
		if e.Err.Message != "" {
			return e.Err.Message
		}
	}
	if e.Detail != "" {
		return e.Detail
	}
	if message, ok := statusMessages[e.StatusCode]; ok {
		return message
	}
	return genericErrorMessage
}

// IsStatus reports whether err is an *APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// newAPIError decodes a non-2xx response body into an APIError. The backend
// emits two shapes: the standard failure envelope, and a bare {"detail": ...}
// where detail is a string, an object, or a validation array. Only the string
// form participates in message mapping; the rest is kept raw.
func newAPIError(method, path string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Body:       body,
	}

	var payload struct {
		Error  *ErrorDetail    `json:"error"`
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	apiErr.Err = payload.Error
	if len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			apiErr.Detail = detail
		}
	}
	return apiErr
}
