package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// ClientsHandler handles all client management endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

// HandleList handles GET /clients
//
//	@Summary		List clients
//	@Description	Returns every client, whoever created it.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		trackersdk.ClientSummary	"id, client_name, created_at, created_by"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		500	{object}	trackersdk.ErrorResponse	"error, error_description"
//	@Router			/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context())
	if err != nil {
		writeError(w, r, "list clients", err)
		return
	}

	out := make([]trackersdk.ClientSummary, len(clients))
	for i, c := range clients {
		out[i] = clientSummary(c)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /clients
//
//	@Summary		Create client
//	@Description	Creates a client owned by the caller.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trackersdk.CreateClientRequest		true	"client_name"
//	@Success		201		{object}	trackersdk.ClientSummary			"id, client_name, created_at, created_by"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_token"
//	@Failure		500		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.CreateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.CreateClient(r.Context(), httpx.UserID(r.Context()), req.ClientName)
	if err != nil {
		writeError(w, r, "create client", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, clientSummary(c))
}

// HandleGet handles GET /clients/{id}
//
//	@Summary		Get client
//	@Description	Returns a client with the projects filed under it.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Client ID (ULID)"
//	@Success		200	{object}	trackersdk.ClientDetail		"client with projects"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		404	{object}	trackersdk.ErrorResponse	"not_found"
//	@Router			/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errClientNotFound.WriteError(w)
		return
	}

	c, err := h.ClientService.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, "get client", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientDetail(c))
}

// HandleUpdate handles PUT and PATCH /clients/{id}. Both are partial: only
// supplied fields change.
//
//	@Summary		Update client
//	@Description	Renames a client. Only its creator may update it.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Client ID (ULID)"
//	@Param			request	body		trackersdk.UpdateClientRequest		true	"client_name"
//	@Success		200		{object}	trackersdk.ClientView				"updated client"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_token"
//	@Failure		403		{object}	trackersdk.ErrorResponse			"permission_denied"
//	@Failure		404		{object}	trackersdk.ErrorResponse			"not_found"
//	@Router			/clients/{id} [put]
//	@Router			/clients/{id} [patch].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errClientNotFound.WriteError(w)
		return
	}

	var req trackersdk.UpdateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.ClientService.UpdateClient(r.Context(), httpx.UserID(r.Context()), id, service.ClientPatch{
		Name: req.ClientName,
	})
	if err != nil {
		writeError(w, r, "update client", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientView(c))
}

// HandleDelete handles DELETE /clients/{id}
//
//	@Summary		Delete client
//	@Description	Deletes a client and every project filed under it. Only its creator may delete it.
//	@Tags			Clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Client ID (ULID)"
//	@Success		204	"Client deleted"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		403	{object}	trackersdk.ErrorResponse	"permission_denied"
//	@Failure		404	{object}	trackersdk.ErrorResponse	"not_found"
//	@Router			/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errClientNotFound.WriteError(w)
		return
	}

	if err := h.ClientService.DeleteClient(r.Context(), httpx.UserID(r.Context()), id); err != nil {
		writeError(w, r, "delete client", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
