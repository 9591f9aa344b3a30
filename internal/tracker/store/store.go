package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories per table group. Repositories obtained from a Tx run
// inside that transaction; nested transactions are not supported.
type Store interface {
	Users() Users
	Clients() Clients
	Projects() Projects
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Prefer it over Tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser cascades to refresh tokens, created projects and project
	// memberships; clients the user created lose their creator.
	DeleteUser(ctx context.Context, id string) error

	// ListUsersByIDs returns the users among ids that exist, ordered by
	// username. Duplicate ids resolve once.
	ListUsersByIDs(ctx context.Context, ids []string) ([]domain.UserRef, error)
}

type Clients interface {
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// ListClients returns every client, oldest first.
	ListClients(ctx context.Context) ([]domain.Client, error)

	CreateClient(ctx context.Context, c domain.Client) error

	// UpdateClientName sets the name and bumps updated_at.
	UpdateClientName(ctx context.Context, id, name string, now time.Time) error

	// DeleteClient cascades to the client's projects.
	DeleteClient(ctx context.Context, id string) error

	// ListClientProjects returns the client's projects, oldest first.
	ListClientProjects(ctx context.Context, clientID string) ([]domain.ProjectRef, error)
}

// ProjectUpdate carries the columns to change. Nil fields are left alone.
type ProjectUpdate struct {
	Name     *string
	ClientID *string
}

type Projects interface {
	// GetProjectByID returns the project with its client name, creator
	// username and assigned users.
	GetProjectByID(ctx context.Context, id string) (domain.Project, error)

	// ListProjectsForUser returns the projects userID is assigned to,
	// oldest first, each with its full user set.
	ListProjectsForUser(ctx context.Context, userID string) ([]domain.Project, error)

	CreateProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, id string, u ProjectUpdate, now time.Time) error
	DeleteProject(ctx context.Context, id string) error

	// SetProjectUsers replaces the assigned user set.
	SetProjectUsers(ctx context.Context, projectID string, userIDs []string) error
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash looks a token up by fingerprint, whatever its state.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// RevokeRefreshToken returns ErrNotFound if no active token matches.
	RevokeRefreshToken(ctx context.Context, hash string, now time.Time) error

	// DeleteExpiredRefreshTokens removes tokens that expired before now and
	// reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}
