package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
)

type ClientService struct {
	Store store.Store
}

// ClientPatch lists the fields of an update. Nil fields are left unchanged.
type ClientPatch struct {
	Name *string
}

// ListClients returns every client regardless of who created it.
func (s *ClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// CreateClient records a client owned by actorID.
func (s *ClientService) CreateClient(ctx context.Context, actorID, name string) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if err := validate(validation.Errors{
		"client_name": validation.Validate(name, nameRules...),
	}); err != nil {
		return domain.Client{}, err
	}

	now := time.Now().UTC()
	c := domain.Client{
		ID:        idx.New().String(),
		Name:      name,
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Clients().CreateClient(ctx, c); err != nil {
		l.Error("failed to create client", "error", err)
		return domain.Client{}, err
	}

	// re-read to pick up the creator's username
	created, err := s.Store.Clients().GetClientByID(ctx, c.ID)
	if err != nil {
		return domain.Client{}, err
	}

	l.Info("client created", "client_id", c.ID)
	return created, nil
}

// GetClient returns a client with its projects.
func (s *ClientService) GetClient(ctx context.Context, id string) (domain.ClientDetail, error) {
	c, err := s.getClient(ctx, s.Store, id)
	if err != nil {
		return domain.ClientDetail{}, err
	}

	projects, err := s.Store.Clients().ListClientProjects(ctx, c.ID)
	if err != nil {
		return domain.ClientDetail{}, err
	}
	return domain.ClientDetail{Client: c, Projects: projects}, nil
}

// UpdateClient applies patch on behalf of actorID, who must be the creator.
func (s *ClientService) UpdateClient(ctx context.Context, actorID, id string, patch ClientPatch) (domain.Client, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := s.getClient(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Authorize(actorID, c); err != nil {
			l.Warn("client update refused", "client_id", id, "owner_id", c.CreatedBy)
			return err
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if err := validate(validation.Errors{
				"client_name": validation.Validate(name, nameRules...),
			}); err != nil {
				return err
			}
			if err := tx.Clients().UpdateClientName(ctx, id, name, time.Now().UTC()); err != nil {
				return err
			}
		}

		updated, err = tx.Clients().GetClientByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Client{}, err
	}

	l.Info("client updated", "client_id", id)
	return updated, nil
}

// DeleteClient removes a client and, through the schema, its projects.
func (s *ClientService) DeleteClient(ctx context.Context, actorID, id string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := s.getClient(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Authorize(actorID, c); err != nil {
			l.Warn("client delete refused", "client_id", id, "owner_id", c.CreatedBy)
			return err
		}
		return tx.Clients().DeleteClient(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, ErrPermissionDenied) && !errors.Is(err, ErrClientNotFound) {
			l.Error("failed to delete client", "client_id", id, "error", err)
		}
		return err
	}

	l.Info("client deleted", "client_id", id)
	return nil
}

func (s *ClientService) getClient(ctx context.Context, st store.Store, id string) (domain.Client, error) {
	c, err := st.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}
