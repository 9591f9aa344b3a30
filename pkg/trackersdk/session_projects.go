package trackersdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListProjects returns the projects the session's user is assigned to.
func (s *Session) ListProjects(ctx context.Context) ([]ProjectSummary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, err
	}

	var projects []ProjectSummary
	if err := decodeJSON(resp, &projects, http.StatusOK); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Session) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/projects", req)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := decodeJSON(resp, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Session) GetProject(ctx context.Context, id string) (*Project, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject sends a PATCH. Only the creator may update a project.
func (s *Session) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (*Project, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/projects/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var p Project
	if err := decodeJSON(resp, &p, http.StatusOK); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Session) DeleteProject(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
