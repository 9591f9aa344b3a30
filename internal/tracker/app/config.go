package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting of the tracker. All fields come from
// the environment; see LoadConfig.
type Config struct {
	Issuer       string        `env:"TRACKER_ISSUER"        envDefault:"tracker"`    // issuer claim for tokens
	DatabaseFile string        `env:"TRACKER_DATABASE_FILE" envDefault:"tracker.db"` // path to SQLite database file
	PepperFile   string        `env:"TRACKER_PEPPER_FILE"   envDefault:"pepper"`     // password pepper, generated if absent
	NumKeys      int           `env:"TRACKER_NUM_KEYS"      envDefault:"1"`          // ephemeral signing keys (1-10)
	AccessTTL    time.Duration `env:"TRACKER_ACCESS_TTL"    envDefault:"15m"`
	RefreshTTL   time.Duration `env:"TRACKER_REFRESH_TTL"   envDefault:"168h"`

	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	RateLimits httpx.RateLimits `env:"-"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	limits, err := httpx.LoadRateLimits()
	if err != nil {
		return Config{}, err
	}
	cfg.RateLimits = limits

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.Issuer == "" {
		errs = append(errs, errors.New("TRACKER_ISSUER must not be empty"))
	}
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("TRACKER_DATABASE_FILE must not be empty"))
	}
	if c.NumKeys < 1 || c.NumKeys > 10 {
		errs = append(errs, fmt.Errorf("TRACKER_NUM_KEYS must be between 1 and 10, got %d", c.NumKeys))
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}
	if c.AccessTTL >= c.RefreshTTL {
		errs = append(errs, errors.New("TRACKER_ACCESS_TTL must be shorter than TRACKER_REFRESH_TTL"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	return errors.Join(errs...)
}
