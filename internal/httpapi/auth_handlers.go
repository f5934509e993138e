package httpapi

import (
	"errors"
	"net/http"
	"time"

	"fleetid.org/internal/audit"
	"fleetid.org/internal/auth"
	"fleetid.org/internal/obs"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type sessionResponse struct {
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token"`
	ExpiresAt        time.Time    `json:"expires_at"`
	RefreshExpiresAt time.Time    `json:"refresh_expires_at"`
	User             userResponse `json:"user"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	Roles       []string  `json:"roles"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

func newSessionResponse(pair auth.TokenPair, principal auth.Principal) sessionResponse {
	return sessionResponse{
		AccessToken:      pair.AccessToken,
		RefreshToken:     pair.RefreshToken,
		ExpiresAt:        pair.AccessExpiresAt,
		RefreshExpiresAt: pair.RefreshExpiresAt,
		User:             newUserResponse(principal),
	}
}

func newUserResponse(principal auth.Principal) userResponse {
	return userResponse{
		ID:          principal.User.ID,
		Name:        principal.User.Name,
		Email:       principal.User.Email,
		Status:      principal.User.Status,
		Roles:       principal.RoleNames(),
		Permissions: principal.PermissionKeys(),
		CreatedAt:   principal.User.CreatedAt,
	}
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pair, principal, err := a.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			obs.ObserveLogin("invalid")
		} else {
			obs.ObserveLogin("error")
		}
		handleServiceError(w, r, err)
		return
	}
	obs.ObserveLogin("ok")
	_ = audit.LogEvent(r.Context(), "auth.session.issued", map[string]any{
		"user_id":    principal.User.ID,
		"expires_at": pair.RefreshExpiresAt.Format(time.RFC3339),
	})
	writeJSON(w, http.StatusCreated, newSessionResponse(pair, principal))
}

func (a *API) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	pair, principal, err := a.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "auth.session.rotated", map[string]any{
		"user_id": principal.User.ID,
	})
	writeJSON(w, http.StatusOK, newSessionResponse(pair, principal))
}

// handleLogout revokes the presented session. Logging out twice is fine.
func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "session invalid")
		return
	}
	if err := a.auth.RevokeToken(r.Context(), token); err != nil {
		handleServiceError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "auth.session.revoked", nil)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "session invalid")
		return
	}
	writeJSON(w, http.StatusOK, newUserResponse(principal))
}
