package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// AuthHandler serves the credential endpoints. Tokens are carried in JSON
// bodies; none of these routes require a bearer token.
type AuthHandler struct {
	UserService  *service.UserService
	TokenService *service.TokenService
}

// HandleRegister handles POST /register
//
//	@Summary		Register
//	@Description	Creates a user. No tokens are issued; log in afterwards.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.RegisterRequest			true	"username, password, email"
//	@Success		201		{object}	trackersdk.MessageResponse			"User created successfully."
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		429		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.UserService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	}); err != nil {
		writeError(w, r, "register", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trackersdk.MessageResponse{Message: "User created successfully."})
}

// HandleLogin handles POST /login
//
//	@Summary		Login
//	@Description	Exchanges a username and password for an access JWT and an opaque refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.LoginRequest				true	"username, password"
//	@Success		200		{object}	trackersdk.TokenResponse			"access, refresh, token_type, expires_in"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_credentials"
//	@Failure		429		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.TokenService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, "login", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// HandleRefresh handles POST /token/refresh
//
//	@Summary		Refresh tokens
//	@Description	Rotates a refresh token. The presented token is revoked and a new pair in the same session is returned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.RefreshRequest			true	"refresh"
//	@Success		200		{object}	trackersdk.TokenResponse			"access, refresh, token_type, expires_in"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_grant"
//	@Failure		429		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/token/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.TokenService.Refresh(r.Context(), req.Refresh)
	if err != nil {
		writeError(w, r, "refresh", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// HandleLogout handles POST /logout
//
//	@Summary		Logout
//	@Description	Revokes a refresh token. Unknown or already revoked tokens are accepted. Access tokens expire naturally.
//	@Tags			Auth
//	@Accept			json
//	@Param			request	body	trackersdk.RefreshRequest	true	"refresh"
//	@Success		204		"Token revoked (or was already invalid)"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		429		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.TokenService.Revoke(r.Context(), req.Refresh); err != nil {
		writeError(w, r, "logout", err)
		return
	}

	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

func tokenResponse(pair *domain.TokenPair) trackersdk.TokenResponse {
	return trackersdk.TokenResponse{
		Access:    pair.AccessToken,
		Refresh:   pair.RefreshToken,
		TokenType: pair.TokenType,
		ExpiresIn: int(pair.ExpiresIn.Seconds()),
	}
}
