package trackersdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// refreshBuffer is how long before expiry a session refreshes its tokens.
const refreshBuffer = 30 * time.Second

// Session represents a logged-in user with automatic token refresh.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func newSession(c *Client, tokens *TokenResponse) *Session {
	return &Session{
		client:       c,
		accessToken:  tokens.Access,
		refreshToken: tokens.Refresh,
		expiresAt:    time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - refreshBuffer),
	}
}

// getValidToken returns the access token, rotating the pair first if it is
// about to expire.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if time.Now().Before(s.expiresAt) {
		token := s.accessToken
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// another goroutine may have refreshed while we waited
	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}
	if err := s.refreshLocked(ctx); err != nil {
		return "", err
	}
	return s.accessToken, nil
}

// Refresh rotates the session's tokens now.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshLocked(ctx)
}

func (s *Session) refreshLocked(ctx context.Context) error {
	if s.refreshToken == "" {
		return errors.New("access token expired and no refresh token available")
	}

	tokens, err := s.client.RefreshTokens(ctx, s.refreshToken)
	if err != nil {
		return fmt.Errorf("failed to refresh token: %w", err)
	}

	s.accessToken = tokens.Access
	s.refreshToken = tokens.Refresh
	s.expiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - refreshBuffer)
	return nil
}

// Logout revokes the session's refresh token. The access token remains
// valid until it expires.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	refresh := s.refreshToken
	s.refreshToken = ""
	s.mu.Unlock()

	if refresh == "" {
		return errors.New("no refresh token to revoke")
	}
	return s.client.Logout(ctx, refresh)
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Me returns the session's user.
func (s *Session) Me(ctx context.Context) (*UserInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/me", nil)
	if err != nil {
		return nil, err
	}

	var u UserInfo
	if err := decodeJSON(resp, &u, http.StatusOK); err != nil {
		return nil, err
	}
	return &u, nil
}
