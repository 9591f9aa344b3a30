package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/idx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"
	validation "github.com/go-ozzo/ozzo-validation"
)

type ProjectService struct {
	Store store.Store
}

type ProjectInput struct {
	Name     string
	ClientID string
	Users    []string
}

// ProjectPatch lists the fields of an update. Nil fields are left
// unchanged; a non-nil Users replaces the assigned set.
type ProjectPatch struct {
	Name     *string
	ClientID *string
	Users    *[]string
}

// CreateProject validates in and stores the project with its user set in
// one transaction. Checks run in a fixed order and the first failure is
// returned: client, then users, then name.
func (s *ProjectService) CreateProject(ctx context.Context, actorID string, in ProjectInput) (domain.Project, error) {
	l := slogx.FromContext(ctx)
	now := time.Now().UTC()
	p := domain.Project{
		ID:        idx.New().String(),
		Name:      strings.TrimSpace(in.Name),
		CreatedBy: actorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created domain.Project
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		clientID, err := checkClient(ctx, tx, in.ClientID)
		if err != nil {
			return err
		}
		p.ClientID = clientID

		users, err := checkUsers(ctx, tx, in.Users)
		if err != nil {
			return err
		}
		if err := checkProjectName(p.Name); err != nil {
			return err
		}

		if err := tx.Projects().CreateProject(ctx, p); err != nil {
			return err
		}
		if err := tx.Projects().SetProjectUsers(ctx, p.ID, users); err != nil {
			return err
		}

		created, err = tx.Projects().GetProjectByID(ctx, p.ID)
		return err
	})
	if err != nil {
		logRefusal(l, "project create", err)
		return domain.Project{}, err
	}

	l.Info("project created", "project_id", p.ID, "client_id", p.ClientID, "users", len(created.Users))
	return created, nil
}

// ListProjectsForUser returns the projects userID is assigned to. Creating
// a project does not assign its creator.
func (s *ProjectService) ListProjectsForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.Store.Projects().ListProjectsForUser(ctx, userID)
}

// GetProject returns a project with its users. Any authenticated caller may
// read any project.
func (s *ProjectService) GetProject(ctx context.Context, id string) (domain.Project, error) {
	return getProject(ctx, s.Store, id)
}

// UpdateProject applies patch on behalf of actorID, who must be the creator.
// Supplied fields are validated as on create.
func (s *ProjectService) UpdateProject(ctx context.Context, actorID, id string, patch ProjectPatch) (domain.Project, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Project
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := getProject(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Authorize(actorID, p); err != nil {
			l.Warn("project update refused", "project_id", id, "owner_id", p.CreatedBy)
			return err
		}

		var u store.ProjectUpdate
		if patch.ClientID != nil {
			clientID, err := checkClient(ctx, tx, *patch.ClientID)
			if err != nil {
				return err
			}
			u.ClientID = &clientID
		}
		var users []string
		if patch.Users != nil {
			if users, err = checkUsers(ctx, tx, *patch.Users); err != nil {
				return err
			}
		}
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if err := checkProjectName(name); err != nil {
				return err
			}
			u.Name = &name
		}

		if err := tx.Projects().UpdateProject(ctx, id, u, time.Now().UTC()); err != nil {
			return err
		}
		if patch.Users != nil {
			if err := tx.Projects().SetProjectUsers(ctx, id, users); err != nil {
				return err
			}
		}

		updated, err = tx.Projects().GetProjectByID(ctx, id)
		return err
	})
	if err != nil {
		logRefusal(l, "project update", err)
		return domain.Project{}, err
	}

	l.Info("project updated", "project_id", id)
	return updated, nil
}

// DeleteProject removes a project on behalf of its creator.
func (s *ProjectService) DeleteProject(ctx context.Context, actorID, id string) error {
	l := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := getProject(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := Authorize(actorID, p); err != nil {
			l.Warn("project delete refused", "project_id", id, "owner_id", p.CreatedBy)
			return err
		}
		return tx.Projects().DeleteProject(ctx, id)
	})
	if err != nil {
		logRefusal(l, "project delete", err)
		return err
	}

	l.Info("project deleted", "project_id", id)
	return nil
}

func getProject(ctx context.Context, st store.Store, id string) (domain.Project, error) {
	p, err := st.Projects().GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, ErrProjectNotFound
		}
		return domain.Project{}, err
	}
	return p, nil
}

// checkClient requires clientID to name an existing client and returns it
// in canonical form. An id that is not a ULID cannot exist.
func checkClient(ctx context.Context, st store.Store, clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if err := validate(validation.Errors{
		"client_id": validation.Validate(clientID, validation.Required),
	}); err != nil {
		return "", err
	}

	id, err := idx.Parse(clientID)
	if err != nil {
		return "", fieldError("client_id", msgClientMissing)
	}

	if _, err := st.Clients().GetClientByID(ctx, id.String()); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", fieldError("client_id", msgClientMissing)
		}
		return "", err
	}
	return id.String(), nil
}

// checkUsers requires a non-empty list whose ids all resolve and returns
// them in canonical form. The check compares counts, so a repeated id is
// reported the same way as a missing one.
func checkUsers(ctx context.Context, st store.Store, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, fieldError("users", msgUsersRequired)
	}

	canonical := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := idx.Parse(raw)
		if err != nil {
			return nil, fieldError("users", msgUsersMissing)
		}
		canonical = append(canonical, id.String())
	}

	found, err := st.Users().ListUsersByIDs(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if len(found) != len(canonical) {
		return nil, fieldError("users", msgUsersMissing)
	}
	return canonical, nil
}

func checkProjectName(name string) error {
	return validate(validation.Errors{
		"project_name": validation.Validate(name, nameRules...),
	})
}

// logRefusal logs expected refusals at Warn and anything else at Error.
func logRefusal(l *slog.Logger, op string, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		l.Warn(op+" rejected", "fields", verr.Fields)
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrProjectNotFound):
		// already logged or not worth logging
	default:
		l.Error(op+" failed", "error", err)
	}
}
