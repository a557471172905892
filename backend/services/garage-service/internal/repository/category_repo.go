package repository

import (
	"context"
	"database/sql"

	"gearlog/backend/services/garage-service/internal/models"
)

// CategoryRepository reads the maintenance category catalog.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository returns repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns the catalog in display order. An empty catalog is valid.
func (r *CategoryRepository) List(ctx context.Context) ([]models.MaintenanceCategory, error) {
	const query = `
		SELECT id, name
		FROM maintenance_categories
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.MaintenanceCategory
	for rows.Next() {
		var c models.MaintenanceCategory
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
