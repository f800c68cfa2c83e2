package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	Date         string    `json:"date"`
	TimeSlot     string    `json:"time_slot"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"total_price"`
	CustomerName string    `json:"customer_name,omitempty"`
	BarberName   string    `json:"barber_name,omitempty"`
	ServiceName  string    `json:"service_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// One entry per slot of a barber's day, booked or free.
type ScheduleSlotDTO struct {
	TimeSlot string          `json:"time_slot"`
	Booking  *BookingListDTO `json:"booking,omitempty"`
}
