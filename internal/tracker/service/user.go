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
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UserService struct {
	Store store.Store
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// Register creates a new identity. No tokens are issued; the caller logs in
// separately.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if err := validate(validation.Errors{
		"username": validation.Validate(in.Username, validation.Required, validation.RuneLength(1, usernameMaxLength)),
		"password": validation.Validate(in.Password, validation.Required),
		"email":    validation.Validate(in.Email, validation.Required, is.Email),
	}); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			l.Info("registration refused, username taken", "username", in.Username)
			return domain.User{}, fieldError("username", msgUsernameTaken)
		}
		l.Error("failed to create user", "error", err)
		return domain.User{}, err
	}

	l.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
