package models

import "time"

// One row per date a barber has marked as unavailable.
// Toggling a day off is an insert or delete, never an update.
type BarberOffDay struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	BarberID uint   `gorm:"uniqueIndex:idx_barber_date" json:"barber_id"`
	Date     string `gorm:"size:10;uniqueIndex:idx_barber_date" json:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"created_at"`
}
