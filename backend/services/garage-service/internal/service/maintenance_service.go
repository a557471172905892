package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearlog/backend/services/garage-service/internal/models"
)

// MaintenanceService exposes service history and the category catalog.
type MaintenanceService struct {
	vehicles    VehicleStore
	maintenance MaintenanceStore
	categories  CategoryStore
	cache       ReportCache
	logger      *zap.Logger
}

// NewMaintenanceService builds service.
func NewMaintenanceService(vehicles VehicleStore, maintenance MaintenanceStore, categories CategoryStore, cache ReportCache, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		vehicles:    vehicles,
		maintenance: maintenance,
		categories:  categories,
		cache:       cache,
		logger:      logger,
	}
}

// AddMaintenanceLogInput is a new service record entry.
type AddMaintenanceLogInput struct {
	VehicleID       int64
	CategoryID      *int64
	ServiceDate     time.Time
	OdometerReading float64
	Cost            *float64
	Notes           string
}

// History returns the vehicle's service records.
func (s *MaintenanceService) History(ctx context.Context, userID, vehicleID int64) ([]models.MaintenanceLog, error) {
	if _, err := s.vehicles.GetByID(ctx, userID, vehicleID); err != nil {
		return nil, err
	}
	return s.maintenance.ListByVehicle(ctx, vehicleID)
}

// Categories returns the catalog.
func (s *MaintenanceService) Categories(ctx context.Context) ([]models.MaintenanceCategory, error) {
	return s.categories.List(ctx)
}

// AddLog stores a service record and drops the cached health report.
func (s *MaintenanceService) AddLog(ctx context.Context, userID int64, input AddMaintenanceLogInput) (*models.MaintenanceLog, error) {
	if _, err := s.vehicles.GetByID(ctx, userID, input.VehicleID); err != nil {
		return nil, err
	}

	log := &models.MaintenanceLog{
		VehicleID:       input.VehicleID,
		CategoryID:      input.CategoryID,
		ServiceDate:     input.ServiceDate.UTC(),
		OdometerReading: input.OdometerReading,
		Cost:            input.Cost,
		Notes:           input.Notes,
	}
	log, err := s.maintenance.Create(ctx, log)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, input.VehicleID); err != nil {
			s.logger.Warn("failed to invalidate health report cache", zap.Int64("vehicle_id", input.VehicleID), zap.Error(err))
		}
	}

	return log, nil
}
