package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

var (
	errClientNotFound = &trackersdk.APIError{
		StatusCode:  http.StatusNotFound,
		Code:        trackersdk.ErrorCodeNotFound,
		Description: "client not found",
	}
	errProjectNotFound = &trackersdk.APIError{
		StatusCode:  http.StatusNotFound,
		Code:        trackersdk.ErrorCodeNotFound,
		Description: "project not found",
	}
)

// writeError maps a service error to its HTTP response. Unrecognised errors
// are logged and reported as server_error without detail.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		trackersdk.NewValidationError(verr.Fields).WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		trackersdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidRefresh):
		trackersdk.ErrInvalidGrant.WriteError(w)
	case errors.Is(err, service.ErrPermissionDenied):
		trackersdk.ErrPermissionDenied.WriteError(w)
	case errors.Is(err, service.ErrClientNotFound):
		errClientNotFound.WriteError(w)
	case errors.Is(err, service.ErrProjectNotFound):
		errProjectNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(op+" failed", "error", err)
		trackersdk.ErrServerError.WriteError(w)
	}
}
