package http

import (
	"net/http"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// ProjectsHandler handles all project endpoints.
type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList handles GET /projects
//
//	@Summary		List my projects
//	@Description	Returns the projects the caller is assigned to. Creating a project does not assign its creator.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		trackersdk.ProjectSummary	"id, project_name, client_name, created_at, created_by"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		500	{object}	trackersdk.ErrorResponse	"error, error_description"
//	@Router			/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.ListProjectsForUser(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeError(w, r, "list projects", err)
		return
	}

	out := make([]trackersdk.ProjectSummary, len(projects))
	for i, p := range projects {
		out[i] = projectSummary(p)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /projects
//
//	@Summary		Create project
//	@Description	Creates a project under an existing client and assigns the given users.
//	@Description	Checks run in order and the first failure is reported: client_id, users, project_name.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trackersdk.CreateProjectRequest		true	"project_name, client_id, users"
//	@Success		201		{object}	trackersdk.Project					"created project"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_token"
//	@Failure		500		{object}	trackersdk.ErrorResponse			"error, error_description"
//	@Router			/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req trackersdk.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.ProjectService.CreateProject(r.Context(), httpx.UserID(r.Context()), service.ProjectInput{
		Name:     req.ProjectName,
		ClientID: req.ClientID,
		Users:    req.Users,
	})
	if err != nil {
		writeError(w, r, "create project", err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, projectView(p))
}

// HandleGet handles GET /projects/{id}
//
//	@Summary		Get project
//	@Description	Returns a project with its assigned users.
//	@Tags			Projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"Project ID (ULID)"
//	@Success		200	{object}	trackersdk.Project			"project"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		404	{object}	trackersdk.ErrorResponse	"not_found"
//	@Router			/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errProjectNotFound.WriteError(w)
		return
	}

	p, err := h.ProjectService.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, r, "get project", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectView(p))
}

// HandleUpdate handles PUT and PATCH /projects/{id}. A supplied users list
// replaces the assigned set.
//
//	@Summary		Update project
//	@Description	Changes the supplied fields, validated as on create. Only the project's creator may update it.
//	@Tags			Projects
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string								true	"Project ID (ULID)"
//	@Param			request	body		trackersdk.UpdateProjectRequest		true	"project_name, client_id, users"
//	@Success		200		{object}	trackersdk.Project					"updated project"
//	@Failure		400		{object}	trackersdk.ValidationErrorResponse	"code, message, details"
//	@Failure		401		{object}	trackersdk.ErrorResponse			"invalid_token"
//	@Failure		403		{object}	trackersdk.ErrorResponse			"permission_denied"
//	@Failure		404		{object}	trackersdk.ErrorResponse			"not_found"
//	@Router			/projects/{id} [put]
//	@Router			/projects/{id} [patch].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errProjectNotFound.WriteError(w)
		return
	}

	var req trackersdk.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.ProjectService.UpdateProject(r.Context(), httpx.UserID(r.Context()), id, service.ProjectPatch{
		Name:     req.ProjectName,
		ClientID: req.ClientID,
		Users:    req.Users,
	})
	if err != nil {
		writeError(w, r, "update project", err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, projectView(p))
}

// HandleDelete handles DELETE /projects/{id}
//
//	@Summary		Delete project
//	@Description	Deletes a project. Only its creator may delete it.
//	@Tags			Projects
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Project ID (ULID)"
//	@Success		204	"Project deleted"
//	@Failure		401	{object}	trackersdk.ErrorResponse	"invalid_token"
//	@Failure		403	{object}	trackersdk.ErrorResponse	"permission_denied"
//	@Failure		404	{object}	trackersdk.ErrorResponse	"not_found"
//	@Router			/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		errProjectNotFound.WriteError(w)
		return
	}

	if err := h.ProjectService.DeleteProject(r.Context(), httpx.UserID(r.Context()), id); err != nil {
		writeError(w, r, "delete project", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
