package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/domain"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
)

type projectsRepo struct {
	db dbtx
}

const projectSelect = `
SELECT p.id, p.project_name, p.client_id, c.client_name, p.created_by, u.username, p.created_at, p.updated_at
FROM projects p
JOIN clients c ON c.id = p.client_id
JOIN users u ON u.id = p.created_by`

func scanProject(row interface{ Scan(...any) error }) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.ClientID, &p.ClientName,
		&p.CreatedBy, &p.CreatedByUsername, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *projectsRepo) GetProjectByID(ctx context.Context, id string) (domain.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, projectSelect+` WHERE p.id = ?`, id))
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}

	// rows must be drained before the next query: the pool holds one connection
	users, err := r.listProjectUsers(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	p.Users = users
	return p, nil
}

func (r *projectsRepo) listProjectUsers(ctx context.Context, projectID string) ([]domain.UserRef, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.username
		 FROM project_users pu
		 JOIN users u ON u.id = pu.user_id
		 WHERE pu.project_id = ?
		 ORDER BY u.username`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.UserRef{}
	for rows.Next() {
		var ref domain.UserRef
		if err := rows.Scan(&ref.ID, &ref.Username); err != nil {
			return nil, err
		}
		users = append(users, ref)
	}
	return users, rows.Err()
}

func (r *projectsRepo) ListProjectsForUser(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := r.scanProjects(ctx, projectSelect+`
		JOIN project_users pu ON pu.project_id = p.id
		WHERE pu.user_id = ?
		ORDER BY p.created_at, p.id`, userID)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].Users, err = r.listProjectUsers(ctx, projects[i].ID); err != nil {
			return nil, err
		}
	}
	return projects, nil
}

func (r *projectsRepo) scanProjects(ctx context.Context, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, project_name, client_id, created_by, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.ClientID, p.CreatedBy, utc(p.CreatedAt), utc(p.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, id string, u store.ProjectUpdate, now time.Time) error {
	sets := []string{"updated_at = ?"}
	args := []any{utc(now)}
	if u.Name != nil {
		sets = append(sets, "project_name = ?")
		args = append(args, *u.Name)
	}
	if u.ClientID != nil {
		sets = append(sets, "client_id = ?")
		args = append(args, *u.ClientID)
	}
	args = append(args, id)

	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE projects SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...))
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id))
}

func (r *projectsRepo) SetProjectUsers(ctx context.Context, projectID string, userIDs []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_users WHERE project_id = ?`, projectID); err != nil {
		return err
	}

	for _, uid := range userIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO project_users (project_id, user_id) VALUES (?, ?)`,
			projectID, uid,
		); err != nil {
			return err
		}
	}
	return nil
}
