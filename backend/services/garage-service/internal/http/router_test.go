package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/analytics"
	"gearlog/backend/services/garage-service/internal/http/handlers"
	"gearlog/backend/services/garage-service/internal/http/middleware"
	"gearlog/backend/services/garage-service/internal/models"
	"gearlog/backend/services/garage-service/internal/repository"
	"gearlog/backend/services/garage-service/internal/service"
)

const testSecret = "router-test-secret"

type stubVehicleStore struct {
	vehicle *models.Vehicle
}

func (s *stubVehicleStore) GetByID(_ context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	if s.vehicle == nil || s.vehicle.ID != vehicleID || s.vehicle.UserID != userID {
		return nil, repository.ErrVehicleNotFound
	}
	return s.vehicle, nil
}

func (s *stubVehicleStore) ListByUser(_ context.Context, userID int64) ([]models.Vehicle, error) {
	if s.vehicle == nil || s.vehicle.UserID != userID {
		return nil, nil
	}
	return []models.Vehicle{*s.vehicle}, nil
}

func (s *stubVehicleStore) UpdateOdometer(_ context.Context, _ int64, _ float64) error {
	return nil
}

type stubFuelLogStore struct {
	logs []models.FuelLog
}

func (s *stubFuelLogStore) ListByVehicle(_ context.Context, vehicleID int64) ([]models.FuelLog, error) {
	var out []models.FuelLog
	for _, l := range s.logs {
		if l.VehicleID == vehicleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubFuelLogStore) Create(_ context.Context, log *models.FuelLog) (*models.FuelLog, error) {
	log.ID = int64(len(s.logs) + 1)
	s.logs = append(s.logs, *log)
	return log, nil
}

type stubMaintenanceStore struct {
	logs []models.MaintenanceLog
}

func (s *stubMaintenanceStore) ListByVehicle(_ context.Context, vehicleID int64) ([]models.MaintenanceLog, error) {
	var out []models.MaintenanceLog
	for _, l := range s.logs {
		if l.VehicleID == vehicleID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubMaintenanceStore) Create(_ context.Context, log *models.MaintenanceLog) (*models.MaintenanceLog, error) {
	log.ID = int64(len(s.logs) + 1)
	s.logs = append(s.logs, *log)
	return log, nil
}

func testToken(t *testing.T, userID int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	odo := 50000.0
	vehicles := &stubVehicleStore{vehicle: &models.Vehicle{
		ID:              1,
		UserID:          7,
		Make:            "Subaru",
		Model:           "Outback",
		Year:            2021,
		FuelType:        "gasoline",
		CurrentOdometer: &odo,
	}}
	fuelLogs := &stubFuelLogStore{}
	maint := &stubMaintenanceStore{}
	logger := zap.NewNop()

	calc := analytics.NewFuelCalculator()
	scorer := analytics.NewHealthScorer()

	vehicleService := service.NewVehicleService(vehicles)
	fuelService := service.NewFuelService(vehicles, fuelLogs, calc, nil, logger)
	healthService := service.NewHealthService(vehicles, fuelLogs, maint, calc, scorer, nil, logger)

	fuelHandler := handlers.NewFuelHandler(fuelService, logger)

	routes := Routes{
		VehiclesList:  handlers.NewVehiclesListHandler(vehicleService),
		VehicleGet:    handlers.NewVehicleGetHandler(vehicleService),
		FuelStats:     fuelHandler.HandleStats,
		FuelAdd:       fuelHandler.HandleAdd,
		VehicleHealth: handlers.NewVehicleHealthHandler(healthService, logger),
		Liveness:      handlers.NewLivenessHandler(),
	}
	return NewRouter(routes, middleware.Auth(testSecret))
}

func TestLivenessNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAPIRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vehicles/1/health-report", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHealthReportEndpoint(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/1/health-report", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report analytics.HealthReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if len(report.Components) != 6 {
		t.Errorf("expected 6 components, got %d", len(report.Components))
	}
	if report.OverallStatus != analytics.StatusCritical {
		t.Errorf("fresh vehicle should be critical, got %s", report.OverallStatus)
	}
}

func TestHealthReportHidesForeignVehicles(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/1/health-report", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, 42))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's vehicle, got %d", rec.Code)
	}
}

func TestAddFuelLogThenStats(t *testing.T) {
	router := newTestRouter(t)
	token := testToken(t, 7)

	for _, body := range []string{
		`{"fill_date":"2025-05-01T00:00:00Z","odometer_reading":49700,"fuel_amount":10,"is_full_tank":true,"total_cost":40}`,
		`{"fill_date":"2025-05-08T00:00:00Z","odometer_reading":50000,"fuel_amount":12,"is_full_tank":true,"total_cost":45}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/vehicles/1/fuel", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/vehicles/1/fuel", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var summary analytics.FuelSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.FillCount != 2 {
		t.Errorf("expected 2 fills, got %d", summary.FillCount)
	}
	if summary.MeanEfficiency == nil || *summary.MeanEfficiency != 25.0 {
		t.Errorf("expected mean efficiency 25.0, got %v", summary.MeanEfficiency)
	}
	if summary.TotalSpend != 85 {
		t.Errorf("expected total spend 85, got %v", summary.TotalSpend)
	}
}

func TestRejectsInvalidFuelAmount(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/api/vehicles/1/fuel",
		strings.NewReader(`{"fill_date":"2025-05-01T00:00:00Z","odometer_reading":49700,"fuel_amount":0}`))
	req.Header.Set("Authorization", "Bearer "+testToken(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
