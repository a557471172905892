package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/analytics"
)

// HealthService computes vehicle health reports on demand, serving cached
// results until the vehicle's records change.
type HealthService struct {
	vehicles    VehicleStore
	fuelLogs    FuelLogStore
	maintenance MaintenanceStore
	calc        *analytics.FuelCalculator
	scorer      *analytics.HealthScorer
	cache       ReportCache
	logger      *zap.Logger

	now func() time.Time
}

// NewHealthService builds service.
func NewHealthService(
	vehicles VehicleStore,
	fuelLogs FuelLogStore,
	maintenance MaintenanceStore,
	calc *analytics.FuelCalculator,
	scorer *analytics.HealthScorer,
	cache ReportCache,
	logger *zap.Logger,
) *HealthService {
	return &HealthService{
		vehicles:    vehicles,
		fuelLogs:    fuelLogs,
		maintenance: maintenance,
		calc:        calc,
		scorer:      scorer,
		cache:       cache,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Report returns the health report for one owned vehicle, recomputing it
// when no cached copy exists.
func (s *HealthService) Report(ctx context.Context, userID, vehicleID int64) (*analytics.HealthReport, error) {
	vehicle, err := s.vehicles.GetByID(ctx, userID, vehicleID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, vehicleID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("health report cache read failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		}
	}

	fuelLogs, err := s.fuelLogs.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	services, err := s.maintenance.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	summary := s.calc.Summarize(fuelLogs)
	report := s.scorer.Report(vehicle, services, summary, s.now())

	if s.cache != nil {
		if err := s.cache.Save(ctx, report); err != nil {
			s.logger.Warn("health report cache write failed", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
		}
	}

	return &report, nil
}
