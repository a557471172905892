package service

import (
	"context"

	"gearlog/backend/services/garage-service/internal/models"
)

// VehicleService exposes the owner's vehicles.
type VehicleService struct {
	vehicles VehicleStore
}

// NewVehicleService builds service.
func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

// List returns the user's vehicles.
func (s *VehicleService) List(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	return s.vehicles.ListByUser(ctx, userID)
}

// Get returns one owned vehicle.
func (s *VehicleService) Get(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	return s.vehicles.GetByID(ctx, userID, vehicleID)
}
