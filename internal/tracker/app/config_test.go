package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/tracker/pkg/httpx"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "tracker", cfg.Issuer)
	require.Equal(t, "tracker.db", cfg.DatabaseFile)
	require.Equal(t, 1, cfg.NumKeys)
	require.Equal(t, 15*time.Minute, cfg.AccessTTL)
	require.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, httpx.DefaultRateLimits(), cfg.RateLimits)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("TRACKER_ISSUER", "tracker-test")
	t.Setenv("TRACKER_NUM_KEYS", "3")
	t.Setenv("TRACKER_ACCESS_TTL", "5m")
	t.Setenv("PORT", "9090")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "50")
	t.Setenv("RATELIMIT_STRICT_WINDOW", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "tracker-test", cfg.Issuer)
	require.Equal(t, 3, cfg.NumKeys)
	require.Equal(t, 5*time.Minute, cfg.AccessTTL)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 50, cfg.RateLimits.Strict.RequestsPerWindow)
	require.Equal(t, 30*time.Second, cfg.RateLimits.Strict.Window)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"too many keys", map[string]string{"TRACKER_NUM_KEYS": "11"}, "TRACKER_NUM_KEYS"},
		{"no keys", map[string]string{"TRACKER_NUM_KEYS": "0"}, "TRACKER_NUM_KEYS"},
		{"access outlives refresh", map[string]string{"TRACKER_ACCESS_TTL": "200h"}, "shorter than"},
		{"bad port", map[string]string{"PORT": "70000"}, "PORT"},
		{"bad duration", map[string]string{"TRACKER_REFRESH_TTL": "soon"}, "parse env"},
		{"zero rate limit", map[string]string{"RATELIMIT_MODERATE_BURST": "0"}, "moderate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			require.Error(t, err)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
