package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/internal/tracker/store/drivers/sqlite"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func addUser(t *testing.T, s store.Store, username string) domain.User {
	t.Helper()
	now := time.Now()
	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$argon2id$fake",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(t.Context(), u))
	return u
}

func addClient(t *testing.T, s store.Store, name, createdBy string) domain.Client {
	t.Helper()
	now := time.Now()
	c := domain.Client{ID: idx.New().String(), Name: name, CreatedBy: createdBy, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Clients().CreateClient(t.Context(), c))
	return c
}

func addProject(t *testing.T, s store.Store, name, clientID, createdBy string, users ...string) domain.Project {
	t.Helper()
	now := time.Now()
	p := domain.Project{ID: idx.New().String(), Name: name, ClientID: clientID, CreatedBy: createdBy, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Projects().CreateProject(t.Context(), p))
	require.NoError(t, s.Projects().SetProjectUsers(t.Context(), p.ID, users))
	return p
}

func TestApplyMigrations_Idempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
}

func TestUsers(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")
	bob := addUser(t, s, "bob")

	got, err := s.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.Equal(t, "alice@example.com", got.Email)
	require.WithinDuration(t, alice.CreatedAt, got.CreatedAt, time.Millisecond)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := alice
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	refs, err := s.Users().ListUsersByIDs(ctx, []string{bob.ID, alice.ID, alice.ID, "nope"})
	require.NoError(t, err)
	require.Equal(t, []domain.UserRef{alice.Ref(), bob.Ref()}, refs)

	refs, err = s.Users().ListUsersByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, refs)

	require.NoError(t, s.Users().DeleteUser(ctx, bob.ID))
	require.ErrorIs(t, s.Users().DeleteUser(ctx, bob.ID), store.ErrNotFound)
}

func TestClients(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")

	acme := addClient(t, s, "Acme", alice.ID)
	addClient(t, s, "Globex", alice.ID)

	got, err := s.Clients().GetClientByID(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.Name)
	require.Equal(t, alice.ID, got.CreatedBy)
	require.Equal(t, "alice", got.CreatedByUsername)

	list, err := s.Clients().ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Acme", list[0].Name)

	later := time.Now().Add(time.Minute)
	require.NoError(t, s.Clients().UpdateClientName(ctx, acme.ID, "Acme Corp", later))
	got, err = s.Clients().GetClientByID(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", got.Name)
	require.WithinDuration(t, later, got.UpdatedAt, time.Millisecond)
	require.WithinDuration(t, acme.CreatedAt, got.CreatedAt, time.Millisecond)

	require.ErrorIs(t, s.Clients().UpdateClientName(ctx, "missing", "x", later), store.ErrNotFound)
	require.ErrorIs(t, s.Clients().DeleteClient(ctx, "missing"), store.ErrNotFound)
}

func TestDeleteClientCascadesToProjects(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")
	acme := addClient(t, s, "Acme", alice.ID)
	p1 := addProject(t, s, "One", acme.ID, alice.ID, alice.ID)
	p2 := addProject(t, s, "Two", acme.ID, alice.ID, alice.ID)

	refs, err := s.Clients().ListClientProjects(ctx, acme.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.ProjectRef{{ID: p1.ID, Name: "One"}, {ID: p2.ID, Name: "Two"}}, refs)

	require.NoError(t, s.Clients().DeleteClient(ctx, acme.ID))

	_, err = s.Projects().GetProjectByID(ctx, p1.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	mine, err := s.Projects().ListProjectsForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, mine)
}

func TestDeleteUserDetachesClientsAndDropsProjects(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")
	bob := addUser(t, s, "bob")
	acme := addClient(t, s, "Acme", alice.ID)
	p := addProject(t, s, "Site", acme.ID, alice.ID, bob.ID)

	require.NoError(t, s.Users().DeleteUser(ctx, alice.ID))

	got, err := s.Clients().GetClientByID(ctx, acme.ID)
	require.NoError(t, err)
	require.Empty(t, got.CreatedBy)
	require.Empty(t, got.CreatedByUsername)
	require.Empty(t, got.OwnerID())

	_, err = s.Projects().GetProjectByID(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjects(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")
	bob := addUser(t, s, "bob")
	carol := addUser(t, s, "carol")
	acme := addClient(t, s, "Acme", alice.ID)
	globex := addClient(t, s, "Globex", alice.ID)

	p := addProject(t, s, "Site Redesign", acme.ID, alice.ID, bob.ID, carol.ID)

	got, err := s.Projects().GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Site Redesign", got.Name)
	require.Equal(t, "Acme", got.ClientName)
	require.Equal(t, "alice", got.CreatedByUsername)
	require.Equal(t, []domain.UserRef{bob.Ref(), carol.Ref()}, got.Users)

	// membership, not ownership
	for user, want := range map[string]int{alice.ID: 0, bob.ID: 1, carol.ID: 1} {
		list, err := s.Projects().ListProjectsForUser(ctx, user)
		require.NoError(t, err)
		require.Len(t, list, want)
		for _, listed := range list {
			require.Equal(t, []domain.UserRef{bob.Ref(), carol.Ref()}, listed.Users)
		}
	}

	name := "Site Refresh"
	require.NoError(t, s.Projects().UpdateProject(ctx, p.ID, store.ProjectUpdate{Name: &name, ClientID: &globex.ID}, time.Now()))
	require.NoError(t, s.Projects().SetProjectUsers(ctx, p.ID, []string{alice.ID, alice.ID}))

	got, err = s.Projects().GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Site Refresh", got.Name)
	require.Equal(t, "Globex", got.ClientName)
	require.Equal(t, []domain.UserRef{alice.Ref()}, got.Users)

	require.ErrorIs(t, s.Projects().UpdateProject(ctx, "missing", store.ProjectUpdate{}, time.Now()), store.ErrNotFound)

	require.NoError(t, s.Projects().DeleteProject(ctx, p.ID))
	require.ErrorIs(t, s.Projects().DeleteProject(ctx, p.ID), store.ErrNotFound)
}

func TestProjectRequiresExistingClient(t *testing.T) {
	s := newStore(t)
	alice := addUser(t, s, "alice")
	now := time.Now()

	err := s.Projects().CreateProject(t.Context(), domain.Project{
		ID: idx.New().String(), Name: "Orphan", ClientID: idx.New().String(),
		CreatedBy: alice.ID, CreatedAt: now, UpdatedAt: now,
	})
	require.Error(t, err)
}

func TestRefreshTokens(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()
	alice := addUser(t, s, "alice")
	now := time.Now()

	live := domain.RefreshToken{ID: idx.New().String(), UserID: alice.ID, TokenHash: "live", SessionID: "s1",
		ExpiresAt: now.Add(time.Hour), CreatedAt: now, UpdatedAt: now}
	dead := domain.RefreshToken{ID: idx.New().String(), UserID: alice.ID, TokenHash: "dead", SessionID: "s2",
		ExpiresAt: now.Add(-time.Hour), CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, live))
	require.NoError(t, s.RefreshTokens().CreateRefreshToken(ctx, dead))

	got, err := s.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.True(t, got.Active(now))
	require.Equal(t, "s1", got.SessionID)

	n, err := s.RefreshTokens().DeleteExpiredRefreshTokens(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	_, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "dead")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.RefreshTokens().RevokeRefreshToken(ctx, "live", now))
	require.ErrorIs(t, s.RefreshTokens().RevokeRefreshToken(ctx, "live", now), store.ErrNotFound)

	got, err = s.RefreshTokens().GetRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	require.True(t, got.Revoked)
	require.False(t, got.Active(now))
}

func TestWithTx(t *testing.T) {
	s := newStore(t)
	ctx := t.Context()

	err := s.WithTx(ctx, func(tx store.Tx) error {
		addUser(t, tx, "ghost")
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.Users().GetUserByUsername(ctx, "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)

	err = s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.ErrorIs(t, err, sql.ErrTxDone, "nested transactions are refused")

	require.NoError(t, s.WithTx(ctx, func(tx store.Tx) error {
		addUser(t, tx, "real")
		return nil
	}))
	_, err = s.Users().GetUserByUsername(ctx, "real")
	require.NoError(t, err)
}
