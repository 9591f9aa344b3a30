package trackersdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client is a client for the tracker API. It performs the unauthenticated
// operations and creates Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a user. No tokens are returned; call Login afterwards.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/register", req)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusCreated)
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	tokens, err := c.LoginTokens(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, tokens), nil
}

// LoginTokens exchanges credentials for a raw token pair.
func (c *Client) LoginTokens(ctx context.Context, username, password string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// RefreshTokens rotates a refresh token. The presented token is revoked.
func (c *Client) RefreshTokens(ctx context.Context, refresh string) (*TokenResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/token/refresh", RefreshRequest{Refresh: refresh})
	if err != nil {
		return nil, err
	}

	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Logout revokes a refresh token.
func (c *Client) Logout(ctx context.Context, refresh string) error {
	resp, err := c.doRequest(ctx, http.MethodPost, "/logout", RefreshRequest{Refresh: refresh})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// NewSessionFromTokens wraps an existing token pair in a Session.
func (c *Client) NewSessionFromTokens(access, refresh string, expiresIn int) *Session {
	return newSession(c, &TokenResponse{
		Access:    access,
		Refresh:   refresh,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
	})
}

func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/readyz")
}

func (c *Client) getHealth(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetJWKS retrieves the keys that verify access tokens.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/.well-known/jwks.json", nil)
	if err != nil {
		return nil, err
	}

	var jwks JWKSResponse
	if err := decodeJSON(resp, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
