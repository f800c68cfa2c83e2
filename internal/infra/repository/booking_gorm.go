package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
	"github.com/barberflow/api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RoleBarber).
		First(&barber).Error; err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	return &barber, nil
}

// --------------------------------------------------
// Off days
// --------------------------------------------------

func (r *BookingGormRepository) HasOffDay(
	ctx context.Context,
	barberID uint,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BarberOffDay{}).
		Where("barber_id = ? AND date = ?", barberID, date).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *BookingGormRepository) AddOffDay(
	ctx context.Context,
	barberID uint,
	date string,
) error {
	return r.db.WithContext(ctx).Create(&models.BarberOffDay{
		BarberID: barberID,
		Date:     date,
	}).Error
}

func (r *BookingGormRepository) RemoveOffDay(
	ctx context.Context,
	barberID uint,
	date string,
) error {
	return r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Delete(&models.BarberOffDay{}).Error
}

func (r *BookingGormRepository) ListOffDays(
	ctx context.Context,
	barberID uint,
) ([]string, error) {

	var dates []string
	if err := r.db.WithContext(ctx).
		Model(&models.BarberOffDay{}).
		Where("barber_id = ?", barberID).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	return dates, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	barberID uint,
	date string,
	timeSlot string,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"barber_id = ? AND date = ? AND time_slot = ? AND status <> ?",
			barberID,
			date,
			timeSlot,
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("slot_conflict")
	}

	return nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(bk).Error
}

// --------------------------------------------------
// Booking (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var bk models.Booking
	if err := r.db.WithContext(ctx).
		First(&bk, bookingID).Error; err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return &bk, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(bk).Error
}

func (r *BookingGormRepository) AddEarnings(
	ctx context.Context,
	barberID uint,
	amount float64,
) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", barberID).
		Update("earnings", gorm.Expr("earnings + ?", amount)).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bks []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("customer_id = ?", customerID).
		Order("date ASC, time_slot ASC").
		Find(&bks).Error; err != nil {
		return nil, err
	}

	return bks, nil
}

func (r *BookingGormRepository) ListBookingsForBarberDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Booking, error) {

	var bks []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time_slot ASC").
		Find(&bks).Error; err != nil {
		return nil, err
	}

	return bks, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bks []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Barber").
		Preload("Service").
		Order("date DESC, time_slot DESC").
		Find(&bks).Error; err != nil {
		return nil, err
	}

	return bks, nil
}

func (r *BookingGormRepository) ListConfirmedForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bks []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Where("date = ? AND status = ?", date, string(domain.StatusConfirmed)).
		Order("time_slot ASC").
		Find(&bks).Error; err != nil {
		return nil, err
	}

	return bks, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
