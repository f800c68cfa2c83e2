package booking

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
)

// in-memory stand-in for the gorm repository
type memRepo struct {
	mu       sync.Mutex
	barbers  map[uint]*models.User
	services map[uint]*models.Service
	offDays  map[string]bool // barberID|date
	bookings map[uint]*models.Booking
	nextID   uint
}

func newMemRepo() *memRepo {
	return &memRepo{
		barbers:  make(map[uint]*models.User),
		services: make(map[uint]*models.Service),
		offDays:  make(map[string]bool),
		bookings: make(map[uint]*models.Booking),
	}
}

func (r *memRepo) addBarber(id uint, name string) {
	r.barbers[id] = &models.User{ID: id, Name: name, Role: models.RoleBarber}
}

func (r *memRepo) addService(id uint, name string, price float64) {
	r.services[id] = &models.Service{ID: id, Name: name, Price: price, Active: true}
}

func offKey(barberID uint, date string) string {
	return fmt.Sprintf("%d|%s", barberID, date)
}

func (r *memRepo) GetBarberByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.barbers[id]
	if !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) HasOffDay(_ context.Context, barberID uint, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offDays[offKey(barberID, date)], nil
}

func (r *memRepo) AddOffDay(_ context.Context, barberID uint, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offDays[offKey(barberID, date)] = true
	return nil
}

func (r *memRepo) RemoveOffDay(_ context.Context, barberID uint, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.offDays, offKey(barberID, date))
	return nil
}

func (r *memRepo) ListOffDays(_ context.Context, barberID uint) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for k, v := range r.offDays {
		if !v {
			continue
		}
		var id uint
		var date string
		fmt.Sscanf(k, "%d|%s", &id, &date)
		if id == barberID {
			out = append(out, date)
		}
	}
	return out, nil
}

func (r *memRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok || !s.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	cp := *s
	return &cp, nil
}

func (r *memRepo) AssertSlotFree(_ context.Context, barberID uint, date, timeSlot string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bk := range r.bookings {
		if bk.BarberID == barberID &&
			bk.Date == date &&
			bk.TimeSlot == timeSlot &&
			bk.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_conflict")
		}
	}
	return nil
}

func (r *memRepo) CreateBooking(_ context.Context, bk *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	bk.ID = r.nextID
	cp := *bk
	r.bookings[bk.ID] = &cp
	return nil
}

func (r *memRepo) GetBooking(_ context.Context, bookingID uint) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	bk, ok := r.bookings[bookingID]
	if !ok {
		return nil, httperr.ErrBusiness("booking_not_found")
	}
	cp := *bk
	return &cp, nil
}

func (r *memRepo) UpdateBooking(_ context.Context, bk *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[bk.ID]; !ok {
		return httperr.ErrBusiness("booking_not_found")
	}
	cp := *bk
	r.bookings[bk.ID] = &cp
	return nil
}

func (r *memRepo) AddEarnings(_ context.Context, barberID uint, amount float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.barbers[barberID]
	if !ok {
		return httperr.ErrBusiness("barber_not_found")
	}
	b.Earnings += amount
	return nil
}

func (r *memRepo) ListBookingsByCustomer(_ context.Context, customerID uint) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.CustomerID == customerID {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (r *memRepo) ListBookingsForBarberDay(_ context.Context, barberID uint, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.BarberID == barberID && bk.Date == date {
			out = append(out, *bk)
		}
	}
	return out, nil
}

func (r *memRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, bk := range r.bookings {
		out = append(out, *bk)
	}
	return out, nil
}

func (r *memRepo) ListConfirmedForDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, bk := range r.bookings {
		if bk.Date == date && bk.Status == string(domain.StatusConfirmed) {
			out = append(out, *bk)
		}
	}
	return out, nil
}

var _ domain.Repository = (*memRepo)(nil)

// synchronous sink recording every dispatched event
type recorderSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (s *recorderSink) Dispatch(ev notify.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recorderSink) forUser(userID uint) []notify.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notify.Event
	for _, ev := range s.events {
		if ev.UserID == userID {
			out = append(out, ev)
		}
	}
	return out
}
