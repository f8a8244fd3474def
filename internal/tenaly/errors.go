package tenaly

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an upstream rejection: the request completed and the Tenaly API
// answered with a non-2xx status and (usually) a message payload.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tenaly: upstream status %d", e.Status)
	}
	return fmt.Sprintf("tenaly: upstream status %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps an upstream rejection out of an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsAccessDenied reports whether the upstream refused the bearer token.
func IsAccessDenied(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && (apiErr.Status == http.StatusForbidden || apiErr.Status == http.StatusUnauthorized)
}
