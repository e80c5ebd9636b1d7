package figma

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the Figma API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("figma: API request failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("figma: API request failed: status %d: %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is an API rejection of the credential.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
