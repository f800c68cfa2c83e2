package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	CustomerID uint
	BarberID   uint
	ServiceID  uint

	Date     string // YYYY-MM-DD
	TimeSlot string // one of domain.TimeSlots
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo        domain.Repository
	notifier    notify.Sink
	slots       *domain.SlotLocker
	adminUserID uint
}

func NewCreateBooking(
	repo domain.Repository,
	notifier notify.Sink,
	slots *domain.SlotLocker,
	adminUserID uint,
) *CreateBooking {
	return &CreateBooking{
		repo:        repo,
		notifier:    notifier,
		slots:       slots,
		adminUserID: adminUserID,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !domain.IsValidDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if !domain.IsValidSlot(in.TimeSlot) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		return nil, err
	}

	// price and duration are snapshotted from the service at creation;
	// later catalog edits never touch existing bookings
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// admission runs under the slot lock so two requests for the same
	// (barber, date, slot) cannot both pass the checks
	key := domain.SlotKey(barber.ID, in.Date, in.TimeSlot)
	uc.slots.Lock(key)
	defer uc.slots.Unlock(key)

	dayOff, err := uc.repo.HasOffDay(ctx, barber.ID, in.Date)
	if err != nil {
		return nil, err
	}
	if dayOff {
		return nil, httperr.ErrBusiness("day_off_conflict")
	}

	if err := uc.repo.AssertSlotFree(
		ctx,
		barber.ID,
		in.Date,
		in.TimeSlot,
	); err != nil {
		return nil, err
	}

	bk := &models.Booking{
		Code:       "bk-" + uuid.NewString(),
		CustomerID: in.CustomerID,
		BarberID:   barber.ID,
		ServiceID:  svc.ID,
		Date:       in.Date,
		TimeSlot:   in.TimeSlot,
		Status:     string(domain.InitialStatus()),
		TotalPrice: svc.Price,
	}

	if err := uc.repo.CreateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		UserID:  uc.adminUserID,
		Message: fmt.Sprintf("New booking for %s at %s", bk.Date, bk.TimeSlot),
		Type:    models.NotificationInfo,
	})

	return bk, nil
}
