package booking

import (
	"context"

	"github.com/barberflow/api/internal/models"
)

type Repository interface {
	// -------- Users --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Off days --------
	HasOffDay(
		ctx context.Context,
		barberID uint,
		date string,
	) (bool, error)

	AddOffDay(
		ctx context.Context,
		barberID uint,
		date string,
	) error

	RemoveOffDay(
		ctx context.Context,
		barberID uint,
		date string,
	) error

	ListOffDays(
		ctx context.Context,
		barberID uint,
	) ([]string, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	AssertSlotFree(
		ctx context.Context,
		barberID uint,
		date string,
		timeSlot string,
	) error

	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	AddEarnings(
		ctx context.Context,
		barberID uint,
		amount float64,
	) error

	// -------- Listings --------
	ListBookingsByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)

	ListBookingsForBarberDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Booking, error)

	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListConfirmedForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)
}
