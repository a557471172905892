package handlers

import (
	"net/http"

	"gearlog/backend/services/garage-service/internal/http/middleware"
	"gearlog/backend/services/garage-service/internal/service"
)

// NewVehiclesListHandler returns GET /api/vehicles handler.
func NewVehiclesListHandler(svc *service.VehicleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing user identity")
			return
		}

		vehicles, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to fetch vehicles")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"vehicles": vehicles,
		})
	}
}

// NewVehicleGetHandler returns GET /api/vehicles/{id} handler.
func NewVehicleGetHandler(svc *service.VehicleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, vehicleID, ok := requestScope(w, r)
		if !ok {
			return
		}

		vehicle, err := svc.Get(r.Context(), userID, vehicleID)
		if err != nil {
			writeServiceError(w, err, "failed to fetch vehicle")
			return
		}
		writeJSON(w, http.StatusOK, vehicle)
	}
}
