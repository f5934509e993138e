package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"fleetid.org/internal/audit"
	"fleetid.org/internal/auth"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Status   *string `json:"status"`
}

type assignRoleRequest struct {
	RoleID string `json:"role_id"`
}

func (a *API) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !a.ensurePermissions(w, r, auth.PermUserView) {
			return
		}
		users, err := a.rbac.ListUsers(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"users": users})
	case http.MethodPost:
		if !a.ensurePermissions(w, r, auth.PermUserUpdate) {
			return
		}
		var req createUserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		user, err := a.rbac.CreateUser(r.Context(), req.Name, req.Email, req.Password, req.Status)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.user.create", map[string]any{
			"user_id": user.ID,
			"email":   user.Email,
		})
		w.Header().Set("Location", fmt.Sprintf("/v1/users/%s", user.ID))
		writeJSON(w, http.StatusCreated, user)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleUserResource(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/users/"), "/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	parts := strings.Split(path, "/")
	userID := parts[0]
	switch {
	case len(parts) == 1:
		a.handleUser(w, r, userID)
	case len(parts) == 2 && parts[1] == "roles":
		a.handleUserRoles(w, r, userID)
	case len(parts) == 3 && parts[1] == "roles":
		a.handleUserRole(w, r, userID, parts[2])
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) handleUser(w http.ResponseWriter, r *http.Request, userID string) {
	switch r.Method {
	case http.MethodGet:
		if !a.ensurePermissions(w, r, auth.PermUserView) {
			return
		}
		user, err := a.rbac.GetUser(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	case http.MethodPatch:
		if !a.ensurePermissions(w, r, auth.PermUserUpdate) {
			return
		}
		var req updateUserRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		user, err := a.rbac.UpdateUser(r.Context(), userID, auth.UserUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Status:   req.Status,
		})
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.user.update", map[string]any{
			"user_id":          user.ID,
			"password_changed": req.Password != nil,
			"status_changed":   req.Status != nil,
		})
		writeJSON(w, http.StatusOK, user)
	case http.MethodDelete:
		if !a.ensurePermissions(w, r, auth.PermUserUpdate) {
			return
		}
		if err := a.rbac.DeleteUser(r.Context(), userID); err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.user.delete", map[string]any{
			"user_id": userID,
		})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPatch, http.MethodDelete)
	}
}

func (a *API) handleUserRoles(w http.ResponseWriter, r *http.Request, userID string) {
	switch r.Method {
	case http.MethodGet:
		if !a.ensurePermissions(w, r, auth.PermUserView) {
			return
		}
		principal, err := a.auth.Principal(r.Context(), userID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"roles":       principal.Roles,
			"permissions": principal.PermissionKeys(),
		})
	case http.MethodPost:
		if !a.ensurePermissions(w, r, auth.PermUserUpdate) {
			return
		}
		var req assignRoleRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		assignment, err := a.rbac.AssignRole(r.Context(), userID, req.RoleID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.user.assign_role", map[string]any{
			"user_id": userID,
			"role_id": assignment.RoleID,
		})
		writeJSON(w, http.StatusCreated, assignment)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleUserRole(w http.ResponseWriter, r *http.Request, userID, roleID string) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r, http.MethodDelete)
		return
	}
	if !a.ensurePermissions(w, r, auth.PermUserUpdate) {
		return
	}
	if err := a.rbac.UnassignRole(r.Context(), userID, roleID); err != nil {
		handleServiceError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "rbac.user.unassign_role", map[string]any{
		"user_id": userID,
		"role_id": roleID,
	})
	w.WriteHeader(http.StatusNoContent)
}
