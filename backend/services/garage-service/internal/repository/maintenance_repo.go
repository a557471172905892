package repository

import (
	"context"
	"database/sql"

	"gearlog/backend/services/garage-service/internal/models"
)

// MaintenanceRepository handles persistence of service records.
type MaintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository returns repository.
func NewMaintenanceRepository(db *sql.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// ListByVehicle returns every service record for the vehicle with the
// category display name joined in. A deleted category leaves the name empty;
// scoring tolerates that.
func (r *MaintenanceRepository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.MaintenanceLog, error) {
	const query = `
		SELECT m.id, m.vehicle_id, m.category_id, COALESCE(c.name, ''), m.service_date, m.odometer_reading, m.cost, COALESCE(m.notes, ''), m.created_at
		FROM maintenance_logs m
		LEFT JOIN maintenance_categories c ON c.id = m.category_id
		WHERE m.vehicle_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.MaintenanceLog
	for rows.Next() {
		var l models.MaintenanceLog
		if err := rows.Scan(
			&l.ID,
			&l.VehicleID,
			&l.CategoryID,
			&l.CategoryName,
			&l.ServiceDate,
			&l.OdometerReading,
			&l.Cost,
			&l.Notes,
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

// Create stores a new service record.
func (r *MaintenanceRepository) Create(ctx context.Context, log *models.MaintenanceLog) (*models.MaintenanceLog, error) {
	const query = `
		INSERT INTO maintenance_logs (vehicle_id, category_id, service_date, odometer_reading, cost, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		log.VehicleID,
		log.CategoryID,
		log.ServiceDate,
		log.OdometerReading,
		log.Cost,
		log.Notes,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return nil, err
	}
	return log, nil
}
