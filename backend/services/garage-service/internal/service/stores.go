package service

import (
	"context"

	"gearlog/backend/services/garage-service/internal/analytics"
	"gearlog/backend/services/garage-service/internal/models"
)

// VehicleStore is the persistence surface the services need for vehicles.
type VehicleStore interface {
	GetByID(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error)
	UpdateOdometer(ctx context.Context, vehicleID int64, reading float64) error
}

// FuelLogStore is the persistence surface for fill-up records.
type FuelLogStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.FuelLog, error)
	Create(ctx context.Context, log *models.FuelLog) (*models.FuelLog, error)
}

// MaintenanceStore is the persistence surface for service records.
type MaintenanceStore interface {
	ListByVehicle(ctx context.Context, vehicleID int64) ([]models.MaintenanceLog, error)
	Create(ctx context.Context, log *models.MaintenanceLog) (*models.MaintenanceLog, error)
}

// CategoryStore reads the maintenance category catalog.
type CategoryStore interface {
	List(ctx context.Context) ([]models.MaintenanceCategory, error)
}

// ReportCache holds computed health reports between record changes.
type ReportCache interface {
	Get(ctx context.Context, vehicleID int64) (*analytics.HealthReport, error)
	Save(ctx context.Context, report analytics.HealthReport) error
	Invalidate(ctx context.Context, vehicleID int64) error
}
