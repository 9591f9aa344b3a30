package tracker_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aussiebroadwan/tracker/pkg/trackersdk"
)

/*
 * Common constants and helper functions for tracker end-to-end tests.
 * This includes container setup, account creation and assertions.
 */

const (
	testImageName = "tracker-test:latest"
	testPassword  = "Password123!"
)

// TestMain builds the Docker image once before all tests and removes it
// after they complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building tracker Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up tracker Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/tracker/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"TRACKER_DATABASE_FILE": "/data/tracker.db",
		"TRACKER_PEPPER_FILE":   "/data/pepper",
		"TRACKER_ISSUER":        "tracker-e2e",
		"TRACKER_NUM_KEYS":      "1",
		"ENV":                   "test",
		"LOG_LEVEL":             "info",
		"LOG_FORMAT":            "json",
	}
}

// setupTrackerContainer starts the tracker with relaxed rate limits, since
// tests issue many requests in quick succession.
func setupTrackerContainer(t *testing.T) *trackersdk.Client {
	t.Helper()

	env := baseEnv()
	env["RATELIMIT_STRICT_REQUESTS"] = "1000"
	env["RATELIMIT_STRICT_WINDOW"] = "60s"
	env["RATELIMIT_STRICT_BURST"] = "1000"
	env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
	env["RATELIMIT_MODERATE_BURST"] = "1000"

	return startContainer(t, env)
}

// setupTrackerContainerWithDefaultRateLimits uses the production limits and
// exists for rate limit tests only.
func setupTrackerContainerWithDefaultRateLimits(t *testing.T) *trackersdk.Client {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) *trackersdk.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return trackersdk.NewClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()))
}

type account struct {
	*trackersdk.Session
	ID       string
	Username string
}

// signUp registers a user with a unique name, logs in and resolves the
// user's id through /me.
func signUp(t *testing.T, client *trackersdk.Client, prefix string) account {
	t.Helper()
	ctx := t.Context()

	username := prefix + "_" + ulid.Make().String()[20:]
	err := client.Register(ctx, trackersdk.RegisterRequest{
		Username: username,
		Password: testPassword,
		Email:    username + "@example.com",
	})
	require.NoError(t, err, "register %s", username)

	session, err := client.Login(ctx, username, testPassword)
	require.NoError(t, err, "login %s", username)

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, username, me.Username)

	return account{Session: session, ID: me.ID, Username: username}
}

// assertTokenResponse verifies a token response has all required fields.
func assertTokenResponse(t *testing.T, resp *trackersdk.TokenResponse) {
	t.Helper()
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.Access, "access token should not be empty")
	require.NotEmpty(t, resp.Refresh, "refresh token should not be empty")
	require.Equal(t, "Bearer", resp.TokenType)
	require.Positive(t, resp.ExpiresIn)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *trackersdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func requireAPIError(t *testing.T, err error, want *trackersdk.APIError) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, want), "want %d %s, got %v", want.StatusCode, want.Code, err)
}
