package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
	RoleAdmin    = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Avatar string `gorm:"size:255" json:"avatar"`
	Role   string `gorm:"size:20;default:'customer'" json:"role"`

	// barber-only
	Specialties string  `gorm:"size:255" json:"specialties"`
	Rating      float64 `gorm:"default:5.0" json:"rating"`
	Earnings    float64 `gorm:"default:0" json:"earnings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
