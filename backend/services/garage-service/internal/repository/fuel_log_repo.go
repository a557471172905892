package repository

import (
	"context"
	"database/sql"

	"gearlog/backend/services/garage-service/internal/models"
)

// FuelLogRepository handles persistence of fill-up records.
type FuelLogRepository struct {
	db *sql.DB
}

// NewFuelLogRepository returns repository.
func NewFuelLogRepository(db *sql.DB) *FuelLogRepository {
	return &FuelLogRepository{db: db}
}

// ListByVehicle returns every fill-up for the vehicle. Order is whatever the
// store yields; the analytics engine sorts explicitly.
func (r *FuelLogRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.FuelLog, error) {
	const query = `
		SELECT id, vehicle_id, fill_date, odometer_reading, fuel_amount, is_full_tank, price_per_unit, total_cost, created_at
		FROM fuel_logs
		WHERE vehicle_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.FuelLog
	for rows.Next() {
		var l models.FuelLog
		if err := rows.Scan(
			&l.ID,
			&l.VehicleID,
			&l.FillDate,
			&l.OdometerReading,
			&l.FuelAmount,
			&l.IsFullTank,
			&l.PricePerUnit,
			&l.TotalCost,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// Create stores a new fill-up record.
func (r *FuelLogRepository) Create(ctx context.Context, log *models.FuelLog) (*models.FuelLog, error) {
	const query = `
		INSERT INTO fuel_logs (vehicle_id, fill_date, odometer_reading, fuel_amount, is_full_tank, price_per_unit, total_cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		log.VehicleID,
		log.FillDate,
		log.OdometerReading,
		log.FuelAmount,
		log.IsFullTank,
		log.PricePerUnit,
		log.TotalCost,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return nil, err
	}
	return log, nil
}
