package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/tracker/internal/tracker/service"
	"github.com/aussiebroadwan/tracker/internal/tracker/store"
	"github.com/aussiebroadwan/tracker/pkg/httpx"
	"github.com/aussiebroadwan/tracker/pkg/jwtx"
	"github.com/aussiebroadwan/tracker/pkg/slogx"

	_ "github.com/aussiebroadwan/tracker/api/tracker" // Swagger docs
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     httpx.TokenVerifier
	limits       httpx.RateLimits
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	TokenService   *service.TokenService
	UserService    *service.UserService
	ClientService  *service.ClientService
	ProjectService *service.ProjectService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier httpx.TokenVerifier,
	limits httpx.RateLimits,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		limits:       limits,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerClients()
	r.registerProjects()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tracker API
//	@version		0.1.0
//	@description	Multi-tenant project tracking. Users register, log in for a token pair and manage
//	@description	clients and the projects carried out for them. Only the creator of a client or
//	@description	project may change or delete it.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs verifiable against the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tracker
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern with request metrics labelled by the
// pattern's path.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	route := pattern
	if _, path, ok := strings.Cut(pattern, " "); ok {
		route = path
	}
	r.Mux.Handle(pattern, httpx.Chain(h, append([]httpx.Middleware{httpx.Instrument(route)}, mws...)...))
}

// handleSecured registers a resource route behind bearer authentication
// with a moderate per-user rate limit.
func (r *Router) handleSecured(pattern string, h http.HandlerFunc) {
	r.handle(pattern, h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(r.limits.Moderate),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
	}

	// Credential endpoints - strict rate limit by IP to slow down guessing
	strict := httpx.RateLimitByIP(r.limits.Strict)
	r.handle("POST /register", http.HandlerFunc(h.HandleRegister), strict)
	r.handle("POST /login", http.HandlerFunc(h.HandleLogin), strict)
	r.handle("POST /token/refresh", http.HandlerFunc(h.HandleRefresh), strict)
	r.handle("POST /logout", http.HandlerFunc(h.HandleLogout), strict)

	me := &MeHandler{UserService: r.UserService}
	r.handle("GET /me", me,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(r.limits.Lenient),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	r.handleSecured("GET /clients", h.HandleList)
	r.handleSecured("POST /clients", h.HandleCreate)
	r.handleSecured("GET /clients/{id}", h.HandleGet)
	r.handleSecured("PUT /clients/{id}", h.HandleUpdate)
	r.handleSecured("PATCH /clients/{id}", h.HandleUpdate)
	r.handleSecured("DELETE /clients/{id}", h.HandleDelete)
}

func (r *Router) registerProjects() {
	h := &ProjectsHandler{ProjectService: r.ProjectService}

	r.handleSecured("GET /projects", h.HandleList)
	r.handleSecured("POST /projects", h.HandleCreate)
	r.handleSecured("GET /projects/{id}", h.HandleGet)
	r.handleSecured("PUT /projects/{id}", h.HandleUpdate)
	r.handleSecured("PATCH /projects/{id}", h.HandleUpdate)
	r.handleSecured("DELETE /projects/{id}", h.HandleDelete)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	lenient := httpx.RateLimitByIP(r.limits.Lenient)
	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion), lenient)
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys), lenient)
	r.handle("GET /.well-known/jwks.json", JWKSHandler(r.keys), lenient)

	r.Mux.Handle("GET /metrics", promhttp.Handler())
	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}
