// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/inventree/pkg/httpx"
	invdomain "github.com/ghuser/inventree/services/inventory/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, invdomain.ErrItemNotFound),
		errors.Is(err, invdomain.ErrParentNotFound),
		errors.Is(err, invdomain.ErrProductNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, invdomain.ErrDuplicateCode),
		errors.Is(err, invdomain.ErrDuplicateProduct),
		errors.Is(err, invdomain.ErrProductInUse),
		errors.Is(err, invdomain.ErrCycle):
		return http.StatusConflict // 409
	case errors.Is(err, invdomain.ErrValidation):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, invdomain.ErrEmptySearch):
		return http.StatusBadRequest // 400
	case errors.Is(err, invdomain.ErrStorage):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}
