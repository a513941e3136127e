// internal/gateway/errors.go
package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 response. By the time a caller sees it the
// forced-logout side effects (credential cleared, navigation to the login
// screen) have already run.
var ErrUnauthorized = errors.New("unauthorized")

// TransportError covers network failures and malformed responses, where
// no server-provided detail exists.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a non-2xx response carrying the server's error detail when
// one was provided.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) work for 401 responses.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// IsValidation reports whether the failure is a 4xx with server detail,
// safe to surface verbatim to the user.
func (e *APIError) IsValidation() bool {
	return e.Status >= 400 && e.Status < 500 && e.Detail != ""
}

type errorBody struct {
	Detail string `json:"detail"`
}

// classifyStatus maps a non-2xx response to the error taxonomy.
func classifyStatus(status int, body []byte) error {
	var eb errorBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &eb)
	}
	return &APIError{Status: status, Detail: eb.Detail}
}
