package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"fleetid.org/internal/auth"
	"fleetid.org/internal/obs"
)

const (
	authHeader = "Authorization"
	bearer     = "Bearer "
)

var publicPaths = []string{
	"/v1/auth/login",
	"/v1/auth/refresh",
	"/metrics",
	"/healthz",
	"/readyz",
	"/v1/info",
	"/",
}

// withAuth resolves the bearer token into a principal for every protected
// path. Whether the principal is entitled to the operation is decided per
// handler; here only session validity matters.
func (a *API) withAuth(next http.Handler) http.Handler {
	if a == nil || a.auth == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractBearerToken(r.Header.Get(authHeader))
		if err != nil {
			writeError(w, r, http.StatusUnauthorized, err.Error())
			return
		}

		_, principal, err := a.auth.Validate(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrSessionInvalid):
				obs.ObserveValidation("http", "invalid")
				writeError(w, r, http.StatusUnauthorized, "session invalid")
			case errors.Is(err, auth.ErrStoreUnavailable):
				obs.ObserveValidation("http", "error")
				writeError(w, r, http.StatusServiceUnavailable, "store unavailable")
			default:
				obs.ObserveValidation("http", "error")
				writeError(w, r, http.StatusInternalServerError, "authentication error")
			}
			return
		}
		obs.ObserveValidation("http", "ok")

		ctx := auth.ContextWithPrincipal(r.Context(), principal)
		ctx = auth.ContextWithToken(ctx, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ensurePermissions writes the error response itself and reports whether the
// caller may proceed. Missing principal is 401; missing permission is 403.
func (a *API) ensurePermissions(w http.ResponseWriter, r *http.Request, perms ...string) bool {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "session invalid")
		return false
	}
	for _, perm := range perms {
		if !principal.HasPermission(perm) {
			writeError(w, r, http.StatusForbidden, "insufficient permission")
			return false
		}
	}
	return true
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	if !strings.HasPrefix(strings.ToLower(header), strings.ToLower(bearer)) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(bearer):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}
