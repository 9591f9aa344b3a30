package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// JWKSHandler publishes the keys that verify access tokens. Keys are
// ephemeral, so the set changes on every restart.
//
//	@Summary		Get JWKS
//	@Description	Returns the Ed25519 public keys used to verify access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	trackersdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, trackersdk.JWKSResponse(keys.PublicJWKS()))
	}
}
