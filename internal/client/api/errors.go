package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork means the request never produced an HTTP response
	// (offline, DNS failure, transport timeout).
	ErrNetwork = errors.New("server unreachable")

	// ErrNotAuthenticated means an authenticated operation was attempted
	// with no session token present. Checked client-side, before any
	// network call.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// APIError is a non-success HTTP response from the backend, carrying the
// status code and the server-provided detail message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Detail)
}

// AsAPIError unwraps err into an *APIError, or returns nil.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
