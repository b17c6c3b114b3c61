package places

import "fmt"

// UnavailableError indicates the places provider could not be reached or
// answered with a non-2xx HTTP status. Surfaced to callers as a gateway
// failure.
type UnavailableError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	return fmt.Sprintf("places %s request failed: %v", e.Op, e.Err)
}

// Unwrap exposes the underlying transport error.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// APIError indicates the provider answered HTTP 200 but signaled an
// application-level error status in the payload.
type APIError struct {
	Status  string
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places API error: %s", e.Status)
	}
	return fmt.Sprintf("places API error: %s (%s)", e.Status, e.Message)
}
