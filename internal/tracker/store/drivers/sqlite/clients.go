package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientSelect = `
SELECT c.id, c.client_name, c.created_by, u.username, c.created_at, c.updated_at
FROM clients c
LEFT JOIN users u ON u.id = c.created_by`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var (
		c         domain.Client
		createdBy sql.NullString
		username  sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &createdBy, &username, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return domain.Client{}, err
	}
	c.CreatedBy = createdBy.String
	c.CreatedByUsername = username.String
	return c, nil
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	c, err := scanClient(r.db.QueryRowContext(ctx, clientSelect+` WHERE c.id = ?`, id))
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, clientSelect+` ORDER BY c.created_at, c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, client_name, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, nullString(c.CreatedBy), utc(c.CreatedAt), utc(c.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *clientsRepo) UpdateClientName(ctx context.Context, id, name string, now time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE clients SET client_name = ?, updated_at = ? WHERE id = ?`,
		name, utc(now), id,
	))
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id))
}

func (r *clientsRepo) ListClientProjects(ctx context.Context, clientID string) ([]domain.ProjectRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_name FROM projects WHERE client_id = ? ORDER BY created_at, id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []domain.ProjectRef{}
	for rows.Next() {
		var ref domain.ProjectRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
