package client

import (
	"encoding/json"
	"fmt"
)

// Envelope is the backend's standard response wrapper. Every endpoint
// returns either {"success": true, "data": ..., "message": ...} or
// {"success": false, "error": {...}}.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

// ErrorDetail is the structured error object inside a failure envelope.
type ErrorDetail struct {
	Code    string          `json:"code,omitempty"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// ValidationDetail is one entry of a validation error's details array.
type ValidationDetail struct {
	Loc  []any  `json:"loc,omitempty"`
	Msg  string `json:"msg"`
	Type string `json:"type,omitempty"`
}

// ValidationDetails decodes the details field as a validation array.
// Returns nil when details is absent or not an array; the backend also uses
// details for free-form debug payloads.
func (e *ErrorDetail) ValidationDetails() []ValidationDetail {
	if len(e.Details) == 0 {
		return nil
	}
	var details []ValidationDetail
	if err := json.Unmarshal(e.Details, &details); err != nil {
		return nil
	}
	return details
}

// Page holds one page of a paginated collection, matching the backend's
// paginated envelope data.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// DecodeData unmarshals the data field of a success envelope into out.
// The body must be a 2xx response body as returned by Client.Do.
func DecodeData(body []byte, out any) error {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("client: parsing response envelope: %w", err)
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("client: response envelope has no data field")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("client: parsing response data: %w", err)
	}
	return nil
}
