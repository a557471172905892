package models

import "time"

// MaintenanceCategory is a catalog entry mapping a category id to its
// display name. The catalog may be empty or grow over time; subsystem
// matching works off the display name alone.
type MaintenanceCategory struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// MaintenanceLog represents one service event for a vehicle. CategoryName is
// denormalized from the catalog at read time and may be empty when the
// category was deleted or never set.
type MaintenanceLog struct {
	ID              int64     `db:"id" json:"id"`
	VehicleID       int64     `db:"vehicle_id" json:"vehicle_id"`
	CategoryID      *int64    `db:"category_id" json:"category_id,omitempty"`
	CategoryName    string    `db:"category_name" json:"category_name,omitempty"`
	ServiceDate     time.Time `db:"service_date" json:"service_date"`
	OdometerReading float64   `db:"odometer_reading" json:"odometer_reading"`
	Cost            *float64  `db:"cost" json:"cost,omitempty"`
	Notes           string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
