package httpapi

import (
	"net/http"
	"strings"

	"fleetid.org/internal/audit"
	"fleetid.org/internal/auth"
	"fleetid.org/internal/ids"
)

type bookVehicleRequest struct {
	VehicleID string `json:"vehicle_id"`
}

// handleVehicleBook accepts a booking on behalf of the fleet services. The
// booking itself is dispatched downstream; this endpoint only enforces that
// the caller holds vehicle.book.
func (a *API) handleVehicleBook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}
	if !a.ensurePermissions(w, r, auth.PermVehicleBook) {
		return
	}
	var req bookVehicleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req.VehicleID = strings.TrimSpace(req.VehicleID)
	if req.VehicleID == "" {
		writeError(w, r, http.StatusBadRequest, "vehicle_id is required")
		return
	}
	principal, _ := auth.PrincipalFromContext(r.Context())
	bookingID := ids.New()
	_ = audit.LogEvent(r.Context(), "fleet.vehicle.book", map[string]any{
		"booking_id": bookingID,
		"vehicle_id": req.VehicleID,
		"user_id":    principal.User.ID,
	})
	writeJSON(w, http.StatusAccepted, map[string]any{
		"booking_id": bookingID,
		"vehicle_id": req.VehicleID,
		"status":     "accepted",
	})
}
