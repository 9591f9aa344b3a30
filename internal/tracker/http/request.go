package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON object from the request body into v. On failure
// it writes invalid_request and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		trackersdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

// pathID returns the canonical form of the {id} path value. Malformed ids
// cannot name a stored row, so ok=false is reported to callers as not found.
func pathID(r *http.Request) (id string, ok bool) {
	parsed, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}
