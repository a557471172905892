package models

import "time"

// FuelLog represents a single fill-up. Price and cost are optional: absent
// values contribute nothing to spend aggregates. Efficiency is derived, never
// stored; it is set only when the fill closes a clean full-tank interval.
type FuelLog struct {
	ID              int64     `db:"id" json:"id"`
	VehicleID       int64     `db:"vehicle_id" json:"vehicle_id"`
	FillDate        time.Time `db:"fill_date" json:"fill_date"`
	OdometerReading float64   `db:"odometer_reading" json:"odometer_reading"`
	FuelAmount      float64   `db:"fuel_amount" json:"fuel_amount"`
	IsFullTank      bool      `db:"is_full_tank" json:"is_full_tank"`
	PricePerUnit    *float64  `db:"price_per_unit" json:"price_per_unit,omitempty"`
	TotalCost       *float64  `db:"total_cost" json:"total_cost,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	Efficiency *float64 `db:"-" json:"efficiency,omitempty"`
}
