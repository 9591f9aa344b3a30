package trackersdk

import (
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
)

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ValidationErrorResponse is the body of a 400 validation failure.
type ValidationErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Details maps request field names to what was wrong with them.
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Auth Types
// ============================================================================

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token for rotation or logout.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	// Access is the signed JWT to send as a Bearer token
	Access string `json:"access"`

	// Refresh is the opaque token used to rotate the pair
	Refresh string `json:"refresh"`

	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds
	ExpiresIn int `json:"expires_in"`
}

// UserInfo describes the caller behind an access token.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ============================================================================
// Client Types
// ============================================================================

type CreateClientRequest struct {
	ClientName string `json:"client_name"`
}

// UpdateClientRequest lists the fields to change. Omitted fields are kept.
type UpdateClientRequest struct {
	ClientName *string `json:"client_name,omitempty"`
}

// ClientSummary is the list and create projection of a client. CreatedBy is
// the creator's username, or nil once the creator has been deleted.
type ClientSummary struct {
	ID         string  `json:"id"`
	ClientName string  `json:"client_name"`
	CreatedAt  string  `json:"created_at"`
	CreatedBy  *string `json:"created_by"`
}

// ClientView is the update projection of a client.
type ClientView struct {
	ID         string  `json:"id"`
	ClientName string  `json:"client_name"`
	CreatedAt  string  `json:"created_at"`
	CreatedBy  *string `json:"created_by"`
	UpdatedAt  string  `json:"updated_at"`
}

// ClientDetail is a client together with its projects.
type ClientDetail struct {
	ID         string       `json:"id"`
	ClientName string       `json:"client_name"`
	Projects   []ProjectRef `json:"projects"`
	CreatedAt  string       `json:"created_at"`
	CreatedBy  *string      `json:"created_by"`
	UpdatedAt  string       `json:"updated_at"`
}

type ProjectRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ============================================================================
// Project Types
// ============================================================================

type CreateProjectRequest struct {
	ProjectName string   `json:"project_name"`
	ClientID    string   `json:"client_id"`
	Users       []string `json:"users"`
}

// UpdateProjectRequest lists the fields to change. A non-nil Users replaces
// the assigned set.
type UpdateProjectRequest struct {
	ProjectName *string   `json:"project_name,omitempty"`
	ClientID    *string   `json:"client_id,omitempty"`
	Users       *[]string `json:"users,omitempty"`
}

type ProjectUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ProjectSummary is the list projection of a project.
type ProjectSummary struct {
	ID          string  `json:"id"`
	ProjectName string  `json:"project_name"`
	ClientName  string  `json:"client_name"`
	CreatedAt   string  `json:"created_at"`
	CreatedBy   *string `json:"created_by"`
}

// Project is the full projection returned by create, retrieve and update.
type Project struct {
	ID          string        `json:"id"`
	ProjectName string        `json:"project_name"`
	ClientName  string        `json:"client_name"`
	Users       []ProjectUser `json:"users"`
	CreatedAt   string        `json:"created_at"`
	CreatedBy   *string       `json:"created_by"`
	UpdatedAt   string        `json:"updated_at"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Checks is only set by
// /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// ============================================================================
// JWKS Types
// ============================================================================

// JWKSResponse is the public key set from /.well-known/jwks.json.
type JWKSResponse jwtx.JWKS
