package httpx_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

type stubVerifier struct {
	claims *jwtx.Claims
	err    error
	got    string
}

func (s *stubVerifier) Verify(token string) (*jwtx.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func TestAuthnMiddleware(t *testing.T) {
	claims := &jwtx.Claims{Username: "alice"}
	claims.Subject = "user-1"

	var seenID, seenName string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = httpx.UserID(r.Context())
		seenName = httpx.Username(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name     string
		header   string
		verifier *stubVerifier
		want     int
	}{
		{"missing header", "", &stubVerifier{claims: claims}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", &stubVerifier{claims: claims}, http.StatusUnauthorized},
		{"empty token", "Bearer ", &stubVerifier{claims: claims}, http.StatusUnauthorized},
		{"verify fails", "Bearer tok", &stubVerifier{err: errors.New("bad")}, http.StatusUnauthorized},
		{"valid", "Bearer tok", &stubVerifier{claims: claims}, http.StatusNoContent},
		{"lowercase scheme", "bearer tok", &stubVerifier{claims: claims}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenID, seenName = "", ""
			req := httptest.NewRequest(http.MethodGet, "/clients", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			httpx.AuthnMiddleware(tt.verifier)(next).ServeHTTP(rec, req)

			require.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				require.True(t, strings.HasPrefix(rec.Header().Get("WWW-Authenticate"), `Bearer error="invalid_token"`))
				require.Contains(t, rec.Body.String(), "invalid_token")
				require.Empty(t, seenID)
				return
			}
			require.Equal(t, "tok", tt.verifier.got)
			require.Equal(t, "user-1", seenID)
			require.Equal(t, "alice", seenName)
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"message": "ok"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.JSONEq(t, `{"message":"ok"}`, rec.Body.String())
}
