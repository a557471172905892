package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/analytics"
	"gearlog/backend/services/garage-service/internal/models"
)

// FuelService exposes fuel statistics and fill-up logging for owned vehicles.
type FuelService struct {
	vehicles VehicleStore
	fuelLogs FuelLogStore
	calc     *analytics.FuelCalculator
	cache    ReportCache
	logger   *zap.Logger
}

// NewFuelService builds service.
func NewFuelService(vehicles VehicleStore, fuelLogs FuelLogStore, calc *analytics.FuelCalculator, cache ReportCache, logger *zap.Logger) *FuelService {
	return &FuelService{
		vehicles: vehicles,
		fuelLogs: fuelLogs,
		calc:     calc,
		cache:    cache,
		logger:   logger,
	}
}

// AddFuelLogInput is a new fill-up entry.
type AddFuelLogInput struct {
	VehicleID       int64
	FillDate        time.Time
	OdometerReading float64
	FuelAmount      float64
	IsFullTank      bool
	PricePerUnit    *float64
	TotalCost       *float64
}

// ErrInvalidFuelAmount rejects non-positive fuel amounts on entry.
var ErrInvalidFuelAmount = errors.New("fuel amount must be positive")

// Stats returns annotated fill-ups and aggregates for one owned vehicle.
func (s *FuelService) Stats(ctx context.Context, userID, vehicleID int64) (analytics.FuelSummary, error) {
	if _, err := s.vehicles.GetByID(ctx, userID, vehicleID); err != nil {
		return analytics.FuelSummary{}, err
	}

	logs, err := s.fuelLogs.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return analytics.FuelSummary{}, err
	}
	return s.calc.Summarize(logs), nil
}

// AddLog stores a fill-up, advances the vehicle odometer when the reading is
// ahead, and drops the cached health report so it is recomputed.
func (s *FuelService) AddLog(ctx context.Context, userID int64, input AddFuelLogInput) (*models.FuelLog, error) {
	if input.FuelAmount <= 0 {
		return nil, ErrInvalidFuelAmount
	}
	if _, err := s.vehicles.GetByID(ctx, userID, input.VehicleID); err != nil {
		return nil, err
	}

	log := &models.FuelLog{
		VehicleID:       input.VehicleID,
		FillDate:        input.FillDate.UTC(),
		OdometerReading: input.OdometerReading,
		FuelAmount:      input.FuelAmount,
		IsFullTank:      input.IsFullTank,
		PricePerUnit:    input.PricePerUnit,
		TotalCost:       input.TotalCost,
	}
	log, err := s.fuelLogs.Create(ctx, log)
	if err != nil {
		return nil, err
	}

	if err := s.vehicles.UpdateOdometer(ctx, input.VehicleID, input.OdometerReading); err != nil {
		s.logger.Warn("failed to advance odometer", zap.Int64("vehicle_id", input.VehicleID), zap.Error(err))
	}
	s.invalidate(ctx, input.VehicleID)

	return log, nil
}

func (s *FuelService) invalidate(ctx context.Context, vehicleID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, vehicleID); err != nil {
		s.logger.Warn("failed to invalidate health report cache", zap.Int64("vehicle_id", vehicleID), zap.Error(err))
	}
}
