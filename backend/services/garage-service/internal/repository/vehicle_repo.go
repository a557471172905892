package repository

import (
	"context"
	"database/sql"
	"errors"

	"gearlog/backend/services/garage-service/internal/models"
)

// ErrVehicleNotFound indicates the vehicle does not exist or is not owned by
// the requesting user.
var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleRepository handles persistence of vehicles.
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository returns repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// GetByID returns a vehicle scoped to its owner.
func (r *VehicleRepository) GetByID(ctx context.Context, userID, vehicleID int64) (*models.Vehicle, error) {
	const query = `
		SELECT id, user_id, make, model, year, fuel_type, current_odometer, created_at, updated_at
		FROM vehicles
		WHERE id = $1 AND user_id = $2
	`
	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, query, vehicleID, userID).Scan(
		&v.ID,
		&v.UserID,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.FuelType,
		&v.CurrentOdometer,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByUser returns the user's vehicles, newest first.
func (r *VehicleRepository) ListByUser(ctx context.Context, userID int64) ([]models.Vehicle, error) {
	const query = `
		SELECT id, user_id, make, model, year, fuel_type, current_odometer, created_at, updated_at
		FROM vehicles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(
			&v.ID,
			&v.UserID,
			&v.Make,
			&v.Model,
			&v.Year,
			&v.FuelType,
			&v.CurrentOdometer,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateOdometer advances the stored odometer reading. Readings behind the
// stored value are ignored so an out-of-order log entry cannot roll it back.
func (r *VehicleRepository) UpdateOdometer(ctx context.Context, vehicleID int64, reading float64) error {
	const query = `
		UPDATE vehicles
		SET current_odometer = $2,
		    updated_at = NOW()
		WHERE id = $1 AND (current_odometer IS NULL OR current_odometer < $2)
	`
	_, err := r.db.ExecContext(ctx, query, vehicleID, reading)
	return err
}
