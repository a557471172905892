package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/service"
)

// FuelHandler holds the fuel statistics and fill-up logging endpoints.
type FuelHandler struct {
	svc    *service.FuelService
	logger *zap.Logger
}

// NewFuelHandler builds handler set.
func NewFuelHandler(svc *service.FuelService, logger *zap.Logger) *FuelHandler {
	return &FuelHandler{svc: svc, logger: logger}
}

type addFuelLogRequest struct {
	FillDate        time.Time `json:"fill_date"`
	OdometerReading float64   `json:"odometer_reading"`
	FuelAmount      float64   `json:"fuel_amount"`
	IsFullTank      bool      `json:"is_full_tank"`
	PricePerUnit    *float64  `json:"price_per_unit"`
	TotalCost       *float64  `json:"total_cost"`
}

// HandleStats handles GET /api/vehicles/{id}/fuel.
func (h *FuelHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.Stats(r.Context(), userID, vehicleID)
	if err != nil {
		writeServiceError(w, err, "failed to compute fuel statistics")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// HandleAdd handles POST /api/vehicles/{id}/fuel.
func (h *FuelHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, vehicleID, ok := requestScope(w, r)
	if !ok {
		return
	}

	var req addFuelLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.FillDate.IsZero() {
		writeError(w, http.StatusBadRequest, "fill_date is required")
		return
	}

	log, err := h.svc.AddLog(r.Context(), userID, service.AddFuelLogInput{
		VehicleID:       vehicleID,
		FillDate:        req.FillDate,
		OdometerReading: req.OdometerReading,
		FuelAmount:      req.FuelAmount,
		IsFullTank:      req.IsFullTank,
		PricePerUnit:    req.PricePerUnit,
		TotalCost:       req.TotalCost,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidFuelAmount) {
			writeError(w, http.StatusBadRequest, "fuel_amount must be positive")
			return
		}
		h.logger.Error("add fuel log failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		writeServiceError(w, err, "failed to store fuel log")
		return
	}
	writeJSON(w, http.StatusCreated, log)
}
