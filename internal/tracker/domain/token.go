package domain

import "time"

// TokenPair is issued on login and on refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // "Bearer"
	ExpiresIn    time.Duration
}

// RefreshToken is the stored record of an issued refresh token. The token
// itself is never stored, only its fingerprint.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	SessionID string // stable across rotations of the same login
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the token can still be exchanged at now.
func (t RefreshToken) Active(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}
