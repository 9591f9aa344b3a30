package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// MeHandler serves GET /me, describing the caller identified by the access
// token.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Current user
//	@Description	Returns the identity behind the bearer token. Project user lists take these ids.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	trackersdk.UserInfo			"id, username, email"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		500	{object}	trackersdk.ErrorResponse	"error, error_description"
//	@Router			/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserService.GetUserByID(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		// a valid token for a deleted user
		if errors.Is(err, store.ErrNotFound) {
			trackersdk.ErrInvalidToken.WriteError(w)
			return
		}
		writeError(w, r, "get current user", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
}
