package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	VehiclesList       http.HandlerFunc
	VehicleGet         http.HandlerFunc
	FuelStats          http.HandlerFunc
	FuelAdd            http.HandlerFunc
	MaintenanceHistory http.HandlerFunc
	MaintenanceAdd     http.HandlerFunc
	Categories         http.HandlerFunc
	VehicleHealth      http.HandlerFunc
	Liveness           http.HandlerFunc
}

// NewRouter registers endpoints. Everything under /api/ goes through the
// auth middleware; the liveness probe stays open.
func NewRouter(routes Routes, auth func(http.Handler) http.Handler) http.Handler {
	api := http.NewServeMux()
	if routes.VehiclesList != nil {
		api.Handle("GET /api/vehicles", routes.VehiclesList)
	}
	if routes.VehicleGet != nil {
		api.Handle("GET /api/vehicles/{id}", routes.VehicleGet)
	}
	if routes.FuelStats != nil {
		api.Handle("GET /api/vehicles/{id}/fuel", routes.FuelStats)
	}
	if routes.FuelAdd != nil {
		api.Handle("POST /api/vehicles/{id}/fuel", routes.FuelAdd)
	}
	if routes.MaintenanceHistory != nil {
		api.Handle("GET /api/vehicles/{id}/maintenance", routes.MaintenanceHistory)
	}
	if routes.MaintenanceAdd != nil {
		api.Handle("POST /api/vehicles/{id}/maintenance", routes.MaintenanceAdd)
	}
	if routes.Categories != nil {
		api.Handle("GET /api/maintenance/categories", routes.Categories)
	}
	if routes.VehicleHealth != nil {
		api.Handle("GET /api/vehicles/{id}/health-report", routes.VehicleHealth)
	}

	mux := http.NewServeMux()
	if auth != nil {
		mux.Handle("/api/", auth(api))
	} else {
		mux.Handle("/api/", api)
	}
	if routes.Liveness != nil {
		mux.Handle("GET /health", routes.Liveness)
	}
	return mux
}
