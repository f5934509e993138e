package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/obs"
)

const serviceName = "fleetid-api"

// ReadyProbe — readiness check backed by the database ping.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

type readinessChecker interface {
	Check(ctx context.Context) error
}

// API is the HTTP layer. It translates requests into auth.Service and
// auth.RBACService calls and maps their errors onto status codes; no
// policy decisions happen here.
type API struct {
	mux        *http.ServeMux
	readyProbe readinessChecker
	auth       *auth.Service
	rbac       *auth.RBACService
	version    string

	rateBurst     int
	ratePerSecond int
	maxBodyBytes  int64
}

// Option configures the API.
type Option func(*API)

// WithRateLimit overrides the per-IP token bucket parameters.
func WithRateLimit(burst, perSecond int) Option {
	return func(a *API) {
		if burst > 0 && perSecond > 0 {
			a.rateBurst = burst
			a.ratePerSecond = perSecond
		}
	}
}

func New(rp readinessChecker, authSvc *auth.Service, rbacSvc *auth.RBACService, version string, opts ...Option) *API {
	a := &API{
		mux:           http.NewServeMux(),
		readyProbe:    rp,
		auth:          authSvc,
		rbac:          rbacSvc,
		version:       version,
		rateBurst:     50,
		ratePerSecond: 25,
		maxBodyBytes:  1 << 20,
	}
	for _, opt := range opts {
		opt(a)
	}

	// health/ready/info
	a.mux.HandleFunc("/healthz", a.Healthz)
	a.mux.HandleFunc("/readyz", a.Ready)
	a.mux.HandleFunc("/v1/info", a.Info)

	// Prometheus metrics
	a.mux.Handle("/metrics", obs.Handler())

	// sessions
	a.mux.HandleFunc("/v1/auth/login", a.handleLogin)
	a.mux.HandleFunc("/v1/auth/refresh", a.handleRefresh)
	a.mux.HandleFunc("/v1/auth/logout", a.handleLogout)
	a.mux.HandleFunc("/v1/users/me", a.handleMe)

	// administration
	a.mux.HandleFunc("/v1/users", a.handleUsers)
	a.mux.HandleFunc("/v1/users/", a.handleUserResource)
	a.mux.HandleFunc("/v1/roles", a.handleRoles)
	a.mux.HandleFunc("/v1/roles/", a.handleRoleResource)
	a.mux.HandleFunc("/v1/permissions", a.handlePermissions)

	// protected fleet endpoint; booking itself lives in the fleet services
	a.mux.HandleFunc("/v1/vehicles/book", a.handleVehicleBook)

	a.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return a
}

// Handler assembles the middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = obs.Instrument(h)
	h = MaxBodyBytes(h, a.maxBodyBytes)
	h = RateLimit(h, a.rateBurst, a.ratePerSecond)
	h = CORS(h)
	h = SecurityHeaders(h)
	h = Logging(h)
	h = RequestID(h)
	return h
}

// --- Handlers ---

func (a *API) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": serviceName,
		"version": a.version,
	})
}

func (a *API) Ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		obs.SetReady(false)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
			"error":  err.Error(),
		})
		return
	}
	obs.SetReady(true)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ready",
	})
}

func (a *API) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    serviceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}
