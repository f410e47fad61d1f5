package api

import (
	"fmt"
	"net/http"

	"github.com/dpetrovs/ember/internal/common"
)

// mapStatus translates an HTTP status into the client error taxonomy.
// login401 distinguishes a rejected credential exchange (bad password) from
// an invalidated session on an already-authenticated request.
func mapStatus(status int, login401 bool) error {
	switch {
	case status == http.StatusUnauthorized:
		if login401 {
			return common.ErrAuthFailure
		}
		return common.ErrSessionInvalid
	case status == http.StatusForbidden:
		return common.ErrSessionInvalid
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return common.ErrValidationFailure
	case status >= 500:
		return fmt.Errorf("%w: server returned %d", common.ErrNetworkFailure, status)
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}
