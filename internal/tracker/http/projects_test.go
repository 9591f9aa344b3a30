package http_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

// Alice creates Site Redesign for Acme and assigns Bob. Only Bob sees it in
// his project list; anyone may still fetch it directly.
func TestScenario_ProjectVisibility(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	bob := signUp(t, c, "bob")
	carol := signUp(t, c, "carol")

	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	site, err := alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign",
		ClientID:    acme.ID,
		Users:       []string{bob.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "Site Redesign", site.ProjectName)
	require.Equal(t, "Acme", site.ClientName)
	require.Equal(t, "alice", *site.CreatedBy)
	require.Equal(t, []trackersdk.ProjectUser{{ID: bob.ID, Username: "bob"}}, site.Users)

	bobs, err := bob.ListProjects(t.Context())
	require.NoError(t, err)
	require.Equal(t, []trackersdk.ProjectSummary{{
		ID:          site.ID,
		ProjectName: "Site Redesign",
		ClientName:  "Acme",
		CreatedAt:   site.CreatedAt,
		CreatedBy:   site.CreatedBy,
	}}, bobs)

	for _, s := range []account{alice, carol} {
		list, err := s.ListProjects(t.Context())
		require.NoError(t, err)
		require.Empty(t, list, s.Username)
	}

	got, err := carol.GetProject(t.Context(), site.ID)
	require.NoError(t, err)
	require.Equal(t, site.ID, got.ID)
}

// Alice creates Site Redesign for Acme assigning herself and Bob. Both get
// nested in the response and both see it in their lists; Carol does not.
func TestScenario_CreatorAssignsSelf(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	bob := signUp(t, c, "bob")
	carol := signUp(t, c, "carol")

	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	site, err := alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign",
		ClientID:    acme.ID,
		Users:       []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []trackersdk.ProjectUser{
		{ID: alice.ID, Username: "alice"},
		{ID: bob.ID, Username: "bob"},
	}, site.Users)

	for _, s := range []account{alice, bob} {
		list, err := s.ListProjects(t.Context())
		require.NoError(t, err)
		require.Len(t, list, 1, s.Username)
		require.Equal(t, site.ID, list[0].ID)
		require.Equal(t, "Acme", list[0].ClientName)
	}

	list, err := carol.ListProjects(t.Context())
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestProjects_LowercaseBodyIDs(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	bob := signUp(t, c, "bob")

	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	// the path accepts any case, so bodies must too
	_, err = alice.GetClient(t.Context(), strings.ToLower(acme.ID))
	require.NoError(t, err)

	site, err := alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign",
		ClientID:    strings.ToLower(acme.ID),
		Users:       []string{strings.ToLower(bob.ID)},
	})
	require.NoError(t, err)
	require.Equal(t, []trackersdk.ProjectUser{{ID: bob.ID, Username: "bob"}}, site.Users)

	bobs, err := bob.ListProjects(t.Context())
	require.NoError(t, err)
	require.Len(t, bobs, 1)
}

func TestProjects_Validation(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	_, err = alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Empty", ClientID: acme.ID, Users: []string{},
	})
	requireFieldError(t, err, "users")

	_, err = alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Orphan", ClientID: "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", Users: []string{alice.ID},
	})
	requireFieldError(t, err, "client_id")

	_, err = alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Ghosts", ClientID: acme.ID, Users: []string{alice.ID, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV"},
	})
	requireFieldError(t, err, "users")

	_, err = alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ClientID: acme.ID, Users: []string{alice.ID},
	})
	requireFieldError(t, err, "project_name")

	detail, err := alice.GetClient(t.Context(), acme.ID)
	require.NoError(t, err)
	require.Empty(t, detail.Projects, "no rejected project was stored")
}

func TestProjects_UpdateAndDelete(t *testing.T) {
	c, _ := newClient(t)
	alice := signUp(t, c, "alice")
	bob := signUp(t, c, "bob")
	carol := signUp(t, c, "carol")
	acme, err := alice.CreateClient(t.Context(), "Acme")
	require.NoError(t, err)

	site, err := alice.CreateProject(t.Context(), trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign", ClientID: acme.ID, Users: []string{bob.ID},
	})
	require.NoError(t, err)

	_, err = bob.UpdateProject(t.Context(), site.ID, trackersdk.UpdateProjectRequest{ProjectName: ptr("Mine")})
	requireAPIError(t, err, trackersdk.ErrPermissionDenied)
	requireAPIError(t, bob.DeleteProject(t.Context(), site.ID), trackersdk.ErrPermissionDenied)

	updated, err := alice.UpdateProject(t.Context(), site.ID, trackersdk.UpdateProjectRequest{
		Users: &[]string{carol.ID},
	})
	require.NoError(t, err)
	require.Equal(t, "Site Redesign", updated.ProjectName)
	require.Equal(t, []trackersdk.ProjectUser{{ID: carol.ID, Username: "carol"}}, updated.Users)

	bobs, err := bob.ListProjects(t.Context())
	require.NoError(t, err)
	require.Empty(t, bobs)

	_, err = alice.UpdateProject(t.Context(), site.ID, trackersdk.UpdateProjectRequest{Users: &[]string{}})
	requireFieldError(t, err, "users")

	require.NoError(t, alice.DeleteProject(t.Context(), site.ID))
	_, err = alice.GetProject(t.Context(), site.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)

	_, err = alice.GetProject(t.Context(), "bogus")
	requireAPIError(t, err, trackersdk.ErrNotFound)
}
