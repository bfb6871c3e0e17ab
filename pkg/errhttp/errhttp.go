// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to Status for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/dispatch"
	itemdomain "github.com/ghuser/wherearethenoodles/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// 5xx messages are replaced with the status text when hideInternal is set.
func WriteError(w http.ResponseWriter, err error, hideInternal bool) {
	status := Status(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal))
}

// Status returns the HTTP status for err, matching wrapped sentinels with
// errors.Is.
func Status(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrInvalidItemName),
		errors.Is(err, itemdomain.ErrInvalidLocation):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, dispatch.ErrUnknownAction):
		return http.StatusBadRequest // 400
	default:
		// ErrPersistence, ErrDecode and anything unrecognized
		return http.StatusInternalServerError // 500
	}
}
