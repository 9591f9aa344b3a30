package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/cryptox"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
)

// TokenService issues and rotates credentials. Access tokens are stateless
// JWTs; refresh tokens are opaque and stored only as fingerprints.
type TokenService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login exchanges a username and password for a token pair. The username is
// trimmed as on registration. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *TokenService) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()
	username = strings.TrimSpace(username)

	if err := validate(validation.Errors{
		"username": validation.Validate(username, validation.Required),
		"password": validation.Validate(password, validation.Required),
	}); err != nil {
		return nil, err
	}

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			cryptox.BurnPasswordCheck(password)
			l.Info("login failed", "reason", "unknown_user")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if !errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Error("stored password hash unusable", "user_id", u.ID, "error", err)
		}
		l.Info("login failed", "reason", "bad_password", "user_id", u.ID)
		return nil, ErrInvalidCredentials
	}

	if n, err := s.Store.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now); err != nil {
		l.Warn("failed to purge expired refresh tokens", "error", err)
	} else if n > 0 {
		l.Debug("purged expired refresh tokens", "count", n)
	}

	var pair *domain.TokenPair
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		pair, err = s.issue(ctx, tx, u, idx.New().String(), now)
		return err
	})
	if err != nil {
		l.Error("failed to issue tokens", "user_id", u.ID, "error", err)
		return nil, err
	}

	l.Info("login succeeded", "user_id", u.ID)
	return pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair sharing its session id is returned. Unknown, expired and revoked
// tokens all yield ErrInvalidRefresh.
func (s *TokenService) Refresh(ctx context.Context, refreshOpaque string) (*domain.TokenPair, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()

	if refreshOpaque == "" {
		return nil, fieldError("refresh", "cannot be blank")
	}
	fp := cryptox.FingerprintToken(refreshOpaque)

	var pair *domain.TokenPair
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rt, err := tx.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if !rt.Active(now) {
			return ErrInvalidRefresh
		}

		u, err := tx.Users().GetUserByID(ctx, rt.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		// a concurrent rotation of the same token loses here
		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		pair, err = s.issue(ctx, tx, u, rt.SessionID, now)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidRefresh) {
			l.Info("refresh refused")
		} else {
			l.Error("refresh failed", "error", err)
		}
		return nil, err
	}

	return pair, nil
}

// Revoke invalidates a refresh token. Revoking an unknown or already
// revoked token is not an error.
func (s *TokenService) Revoke(ctx context.Context, refreshOpaque string) error {
	if refreshOpaque == "" {
		return fieldError("refresh", "cannot be blank")
	}

	err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, cryptox.FingerprintToken(refreshOpaque), time.Now().UTC())
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		slogx.FromContext(ctx).Error("failed to revoke refresh token", "error", err)
		return err
	}
	return nil
}

func (s *TokenService) issue(ctx context.Context, tx store.Tx, u domain.User, sessionID string, now time.Time) (*domain.TokenPair, error) {
	claims := jwtx.NewAccessClaims(u.ID, sessionID, u.Username, s.Issuer, s.AccessTTL, now)
	access, err := s.KeyManager.Signer().Sign(claims)
	if err != nil {
		return nil, err
	}

	refresh, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return nil, err
	}

	if err := tx.RefreshTokens().CreateRefreshToken(ctx, domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    u.ID,
		TokenHash: cryptox.FingerprintToken(refresh),
		SessionID: sessionID,
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.AccessTTL,
	}, nil
}
