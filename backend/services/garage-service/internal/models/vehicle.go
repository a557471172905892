package models

import "time"

// Vehicle represents a tracked vehicle. CurrentOdometer is nil until the
// owner has entered a reading; scoring treats a missing reading as zero.
type Vehicle struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Make            string    `db:"make" json:"make"`
	Model           string    `db:"model" json:"model"`
	Year            int       `db:"year" json:"year"`
	FuelType        string    `db:"fuel_type" json:"fuel_type"`
	CurrentOdometer *float64  `db:"current_odometer" json:"current_odometer,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Odometer returns the current reading, zero when none has been recorded.
func (v *Vehicle) Odometer() float64 {
	if v.CurrentOdometer == nil {
		return 0
	}
	return *v.CurrentOdometer
}
