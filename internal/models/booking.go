package models

import "time"

type Booking struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:40;uniqueIndex" json:"code"`

	CustomerID uint `json:"customer_id"`
	Customer   User `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BarberID uint `gorm:"index:idx_slot" json:"barber_id"`
	Barber   User `gorm:"foreignKey:BarberID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Date     string `gorm:"size:10;index:idx_slot" json:"date"` // YYYY-MM-DD
	TimeSlot string `gorm:"size:10;index:idx_slot" json:"time_slot"`

	Status string `gorm:"size:20;default:'pending';index:idx_slot" json:"status"`

	// price at creation time; later service edits do not touch it
	TotalPrice float64 `json:"total_price"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
