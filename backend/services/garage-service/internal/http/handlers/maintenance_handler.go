package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/service"
)

// MaintenanceHandler holds the service-history endpoints.
type MaintenanceHandler struct {
	svc    *service.MaintenanceService
	logger *zap.Logger
}

// NewMaintenanceHandler builds handler set.
func NewMaintenanceHandler(svc *service.MaintenanceService, logger *zap.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{svc: svc, logger: logger}
}

type addMaintenanceLogRequest struct {
	CategoryID      *int64    `json:"category_id"`
	ServiceDate     time.Time `json:"service_date"`
	OdometerReading float64   `json:"odometer_reading"`
	Cost            *float64  `json:"cost"`
	Notes           string    `json:"notes"`
}

// HandleHistory handles GET /api/vehicles/{id}/maintenance.
func (h *MaintenanceHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}

	logs, err := h.svc.History(r.Context(), userID, vehicleID)
	if err != nil {
		writeServiceError(w, err, "failed to fetch maintenance history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"maintenance_logs": logs,
	})
}

// HandleAdd handles POST /api/vehicles/{id}/maintenance.
func (h *MaintenanceHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req addMaintenanceLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ServiceDate.IsZero() {
		writeError(w, http.StatusBadRequest, "service_date is required")
		return
	}

	log, err := h.svc.AddLog(r.Context(), userID, service.AddMaintenanceLogInput{
		VehicleID:       vehicleID,
		CategoryID:      req.CategoryID,
		ServiceDate:     req.ServiceDate,
		OdometerReading: req.OdometerReading,
		Cost:            req.Cost,
		Notes:           req.Notes,
	})
	if err != nil {
		h.logger.Error("add maintenance log failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		writeServiceError(w, err, "failed to store maintenance log")
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// HandleCategories handles GET /api/maintenance/categories.
func (h *MaintenanceHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
