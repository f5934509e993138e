package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"fleetid.org/internal/audit"
	"fleetid.org/internal/auth"
)

type createRoleRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type updateRoleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type updateRolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (a *API) handleRoles(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if !a.ensurePermissions(w, r, auth.PermRoleView) {
			return
		}
		roles, err := a.rbac.ListRoles(r.Context())
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"roles": roles})
	case http.MethodPost:
		if !a.ensurePermissions(w, r, auth.PermRoleCreate) {
			return
		}
		var req createRoleRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		role, err := a.rbac.CreateRole(r.Context(), req.Name, req.Description, req.Permissions)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.role.create", map[string]any{
			"role_id": role.ID,
			"name":    role.Name,
		})
		w.Header().Set("Location", fmt.Sprintf("/v1/roles/%s", role.ID))
		writeJSON(w, http.StatusCreated, role)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) handleRoleResource(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/roles/"), "/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	parts := strings.Split(path, "/")
	roleID := parts[0]
	switch {
	case len(parts) == 1:
		a.handleRole(w, r, roleID)
	case len(parts) == 2 && parts[1] == "permissions":
		a.handleRolePermissions(w, r, roleID)
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) handleRole(w http.ResponseWriter, r *http.Request, roleID string) {
	switch r.Method {
	case http.MethodGet:
		if !a.ensurePermissions(w, r, auth.PermRoleView) {
			return
		}
		role, perms, err := a.rbac.GetRole(r.Context(), roleID)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"role":        role,
			"permissions": perms,
		})
	case http.MethodPut:
		if !a.ensurePermissions(w, r, auth.PermRoleUpdate) {
			return
		}
		var req updateRoleRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		role, err := a.rbac.UpdateRole(r.Context(), roleID, req.Name, req.Description)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.role.update", map[string]any{
			"role_id": role.ID,
			"name":    role.Name,
		})
		writeJSON(w, http.StatusOK, role)
	case http.MethodDelete:
		if !a.ensurePermissions(w, r, auth.PermRoleDelete) {
			return
		}
		if err := a.rbac.DeleteRole(r.Context(), roleID); err != nil {
			handleServiceError(w, r, err)
			return
		}
		_ = audit.LogEvent(r.Context(), "rbac.role.delete", map[string]any{
			"role_id": roleID,
		})
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) handleRolePermissions(w http.ResponseWriter, r *http.Request, roleID string) {
	if r.Method != http.MethodPut {
		methodNotAllowed(w, r, http.MethodPut)
		return
	}
	if !a.ensurePermissions(w, r, auth.PermRoleUpdate) {
		return
	}
	var req updateRolePermissionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.rbac.SetRolePermissions(r.Context(), roleID, req.Permissions); err != nil {
		handleServiceError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "rbac.role.permissions.update", map[string]any{
		"role_id": roleID,
		"count":   len(req.Permissions),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handlePermissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}
	if !a.ensurePermissions(w, r, auth.PermRoleView) {
		return
	}
	perms, err := a.rbac.ListPermissions(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"permissions": perms})
}
