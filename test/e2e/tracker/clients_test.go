package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

// TestClientOwnership: any user sees every client but only the creator may
// change one, and deleting it takes its projects along.
func TestClientOwnership(t *testing.T) {
	client := setupTrackerContainer(t)
	ctx := t.Context()

	alice := signUp(t, client, "alice")
	bob := signUp(t, client, "bob")

	acme, err := alice.CreateClient(ctx, "  Acme  ")
	require.NoError(t, err)
	require.Equal(t, "Acme", acme.ClientName)
	require.NotNil(t, acme.CreatedBy)
	require.Equal(t, alice.Username, *acme.CreatedBy)

	listed, err := bob.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, acme.ID, listed[0].ID)

	newName := "Hijacked"
	_, err = bob.UpdateClient(ctx, acme.ID, trackersdk.UpdateClientRequest{ClientName: &newName})
	requireAPIError(t, err, trackersdk.ErrPermissionDenied)

	err = bob.DeleteClient(ctx, acme.ID)
	requireAPIError(t, err, trackersdk.ErrPermissionDenied)

	newName = "Acme Corp"
	updated, err := alice.UpdateClient(ctx, acme.ID, trackersdk.UpdateClientRequest{ClientName: &newName})
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", updated.ClientName)

	project, err := alice.CreateProject(ctx, trackersdk.CreateProjectRequest{
		ProjectName: "Website",
		ClientID:    acme.ID,
		Users:       []string{bob.ID},
	})
	require.NoError(t, err)

	detail, err := bob.GetClient(ctx, acme.ID)
	require.NoError(t, err)
	require.Len(t, detail.Projects, 1)
	require.Equal(t, project.ID, detail.Projects[0].ID)

	require.NoError(t, alice.DeleteClient(ctx, acme.ID))

	_, err = alice.GetClient(ctx, acme.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)

	_, err = bob.GetProject(ctx, project.ID)
	requireAPIError(t, err, trackersdk.ErrNotFound)
}

func TestCreateClientValidation(t *testing.T) {
	client := setupTrackerContainer(t)
	alice := signUp(t, client, "alice")

	_, err := alice.CreateClient(t.Context(), "   ")
	requireAPIError(t, err, trackersdk.ErrValidation)

	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Contains(t, apiErr.Fields, "client_name")
}
