package httpx

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/tracker/pkg/slogx"
	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket of RequestsPerWindow refills per Window.
type RateLimitConfig struct {
	RequestsPerWindow int           `env:"REQUESTS"`
	Window            time.Duration `env:"WINDOW"`
	Burst             int           `env:"BURST"`
}

// RateLimits groups the profiles used by the router.
type RateLimits struct {
	// Strict guards credential endpoints against brute force.
	Strict RateLimitConfig `envPrefix:"STRICT_"`
	// Moderate applies to authenticated resource endpoints.
	Moderate RateLimitConfig `envPrefix:"MODERATE_"`
	// Lenient applies to public read-only endpoints.
	Lenient RateLimitConfig `envPrefix:"LENIENT_"`
}

// DefaultRateLimits returns the built-in profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5},
		Moderate: RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 60},
		Lenient:  RateLimitConfig{RequestsPerWindow: 600, Window: time.Minute, Burst: 300},
	}
}

// LoadRateLimits starts from DefaultRateLimits and applies any
// RATELIMIT_{STRICT,MODERATE,LENIENT}_{REQUESTS,WINDOW,BURST} overrides.
func LoadRateLimits() (RateLimits, error) {
	rl := DefaultRateLimits()
	if err := env.ParseWithOptions(&rl, env.Options{Prefix: "RATELIMIT_"}); err != nil {
		return RateLimits{}, fmt.Errorf("httpx: parse rate limits: %w", err)
	}
	for name, c := range map[string]RateLimitConfig{"strict": rl.Strict, "moderate": rl.Moderate, "lenient": rl.Lenient} {
		if c.RequestsPerWindow <= 0 || c.Window <= 0 || c.Burst <= 0 {
			return RateLimits{}, fmt.Errorf("httpx: %s rate limit must be positive, got %+v", name, c)
		}
	}
	return rl, nil
}

// KeyExtractor groups requests into buckets.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor returns the client address, honouring X-Forwarded-For and
// X-Real-IP from a fronting proxy.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor returns the authenticated user id, if any.
func UserIDKeyExtractor(r *http.Request) string {
	return UserID(r.Context())
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, extract := range extractors {
			if key := extract(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

const limiterSweepInterval = 5 * time.Minute

type rateLimiter struct {
	limiters sync.Map // string -> *rate.Limiter
	rate     rate.Limit
	burst    int

	mu        sync.Mutex
	lastSweep time.Time
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	if l, ok := rl.limiters.Load(key); ok {
		return l.(*rate.Limiter)
	}
	l, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	rl.maybeSweep()
	return l.(*rate.Limiter)
}

// maybeSweep drops limiters whose bucket has refilled, which means the key
// has been idle.
func (rl *rateLimiter) maybeSweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastSweep) < limiterSweepInterval {
		return
	}
	rl.lastSweep = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware rejects requests over config with 429. Requests for
// which keyFn yields no key are let through.
func RateLimitMiddleware(config RateLimitConfig, keyFn KeyExtractor) Middleware {
	rl := &rateLimiter{
		rate:      rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:     config.Burst,
		lastSweep: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyFn(r)
			if key == "" {
				log.Warn("rate limit: no key for request, allowing")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.get(key)
			if !limiter.Allow() {
				res := limiter.Reserve()
				retryAfter := max(int(res.Delay().Seconds()), 1)
				res.Cancel()

				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
				w.Header().Set("X-RateLimit-Window", config.Window.String())

				log.Warn("rate limit exceeded", "key", key, "retry_after", retryAfter)

				WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error":             "rate_limit_exceeded",
					"error_description": "Too many requests. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits by client address.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by authenticated user and address. It must run
// after AuthnMiddleware to see the user.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":", UserIDKeyExtractor, IPKeyExtractor))
}
