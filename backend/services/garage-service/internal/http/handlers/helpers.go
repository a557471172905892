package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"gearlog/backend/services/garage-service/internal/http/middleware"
	"gearlog/backend/services/garage-service/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// requestScope extracts the authenticated user and the vehicle path id, or
// writes the appropriate error and reports failure.
func requestScope(w http.ResponseWriter, r *http.Request) (userID, vehicleID int64, ok bool) {
	userID, ok = middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return 0, 0, false
	}
	vehicleID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || vehicleID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid vehicle id")
		return 0, 0, false
	}
	return userID, vehicleID, true
}

// writeServiceError maps known service errors onto status codes.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, repository.ErrVehicleNotFound) {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}
