package http_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

func TestClients_CRUD(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")

	created, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Acme", created.ClientName)
	require.NotNil(t, created.CreatedBy)
	require.Equal(t, "alice", *created.CreatedBy)
	require.NotEmpty(t, created.CreatedAt)

	list, err := alice.ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, *created, list[0])

	detail, err := alice.GetClient(t.Context(), created.ID)
	require.NoError(t, err)
	require.Empty(t, detail.Projects)
	require.Equal(t, created.CreatedAt, detail.CreatedAt)

	renamed, err := alice.UpdateClient(t.Context(), created.ID, trackersdk.UpdateClientRequest{ClientName: ptr("Acme Corp")})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", renamed.ClientName)
	require.Equal(t, created.CreatedAt, renamed.CreatedAt)

	require.NoError(t, alice.DeleteClient(t.Context(), created.ID))
	_, err = alice.GetClient(t.Context(), created.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)
}

func TestClients_Validation(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")

	_, err := alice.CreateClient(t.Context(), "")
	requireFieldError(t, err, "client_name")

	_, err = alice.CreateClient(t.Context(), strings.Repeat("x", 251))
	requireFieldError(t, err, "client_name")

	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)
	_, err = alice.UpdateClient(t.Context(), acme.ID, trackersdk.UpdateClientRequest{ClientName: ptr("  ")})
	requireFieldError(t, err, "client_name")
}

func TestClients_PutIsPartial(t *testing.T) {
	c, srv := newClient(t)
	alice := signUp(t, c, "alice")
	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPut, srv.URL+"/clients/"+acme.ID, strings.NewReader(`{}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+alice.AccessToken())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := alice.GetClient(t.Context(), acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", got.ClientName)
}

func TestClients_MalformedIDIsNotFound(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")

	_, err := alice.GetClient(t.Context(), "not-an-id")
	requireAPIError(t, err, trackersdk.ErrNotFound)
	requireAPIError(t, alice.DeleteClient(t.Context(), "42"), trackersdk.ErrNotFound)
}

// Alice owns Acme. Bob can see it but cannot change or delete it; Alice's
// delete removes the client and its projects.
func TestScenario_ClientOwnership(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	bob := signUp(t, c, "bob")

	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	seen, err := bob.ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, seen, 1)
	require.Equal(t, "alice", *seen[0].CreatedBy)

	_, err = bob.UpdateClient(t.Context(), acme.ID, trackersdk.UpdateClientRequest{ClientName: ptr("Bobco")})
	requireAPIError(t, err, trackersdk.ErrPermissionDenied)
	requireAPIError(t, bob.DeleteClient(t.Context(), acme.ID), trackersdk.ErrPermissionDenied)

	unchanged, err := alice.GetClient(t.Context(), acme.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", unchanged.ClientName)

	site, err := alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign",
		ClientID:    acme.ID,
		Users:       []string{bob.ID},
	})
	require.NoError(t, err)

	detail, err := alice.GetClient(t.Context(), acme.ID)
	require.NoError(t, err)
	require.Equal(t, []trackersdk.ProjectRef{{ID: site.ID, Name: "Site Redesign"}}, detail.Projects)

	require.NoError(t, alice.DeleteClient(t.Context(), acme.ID))

	_, err = alice.GetClient(t.Context(), acme.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)
	_, err = bob.GetProject(t.Context(), site.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)

	mine, err := bob.ListProjects(t.Context())
	require.NoError(t, err)
	require.Empty(t, mine)
}

func ptr[T any](v T) *T { return &v }
