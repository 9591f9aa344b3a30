package trackersdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListClients returns every client.
func (s *Session) ListClients(ctx context.Context) ([]ClientSummary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients", nil)
	if err != nil {
		return nil, err
	}

	var clients []ClientSummary
	if err := decodeJSON(resp, &clients, http.StatusOK); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient creates a client owned by the session's user.
func (s *Session) CreateClient(ctx context.Context, name string) (*ClientSummary, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/clients", CreateClientRequest{ClientName: name})
	if err != nil {
		return nil, err
	}

	var c ClientSummary
	if err := decodeJSON(resp, &c, http.StatusCreated); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Session) GetClient(ctx context.Context, id string) (*ClientDetail, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var c ClientDetail
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClient sends a PATCH. Only the creator may update a client.
func (s *Session) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (*ClientView, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, "/clients/"+url.PathEscape(id), req)
	if err != nil {
		return nil, err
	}

	var c ClientView
	if err := decodeJSON(resp, &c, http.StatusOK); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteClient removes a client and its projects.
func (s *Session) DeleteClient(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/clients/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
