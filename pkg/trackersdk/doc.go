/*
Package trackersdk provides a Go client for the tracker HTTP API.

# Client vs Session

  - Client: unauthenticated operations (register, login, health, JWKS)
  - Session: authenticated operations with automatic token refresh

	c := trackersdk.NewClient("http://localhost:8080")

	if err := c.Register(ctx, trackersdk.RegisterRequest{
		Username: "alice",
		Password: "correct-horse",
		Email:    "alice@example.com",
	}); err != nil {
		return err
	}

	s, err := c.Login(ctx, "alice", "correct-horse")
	if err != nil {
		return err
	}

	acme, err := s.CreateClient(ctx, "Acme")
	...
	project, err := s.CreateProject(ctx, trackersdk.CreateProjectRequest{
		ProjectName: "Site Redesign",
		ClientID:    acme.ID,
		Users:       []string{bobID},
	})

# Errors

Non-2xx responses are returned as *APIError. Validation failures carry the
offending fields in Fields. The predefined errors can be matched with
errors.Is, which compares status and code only:

	if errors.Is(err, trackersdk.ErrPermissionDenied) { ... }

# Thread Safety

Sessions are safe for concurrent use. Token refresh is serialised behind a
lock so concurrent callers never rotate the same refresh token twice.
*/
package trackersdk
