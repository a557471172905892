package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/service"
)

// NewVehicleHealthHandler returns GET /api/vehicles/{id}/health-report
// handler. The report is fully computed server-side; clients render it
// without further scoring or classification.
func NewVehicleHealthHandler(svc *service.HealthService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, vehicleID, ok := requestScope(w, r)
		if !ok {
			return
		}

		report, err := svc.Report(r.Context(), userID, vehicleID)
		if err != nil {
			logger.Error("health report failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
			writeServiceError(w, err, "failed to compute health report")
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
