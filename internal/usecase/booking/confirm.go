package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
)

type ConfirmBooking struct {
	repo     domain.Repository
	notifier notify.Sink
}

func NewConfirmBooking(
	repo domain.Repository,
	notifier notify.Sink,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Confirm(bk, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		UserID: bk.CustomerID,
		Message: fmt.Sprintf(
			"Your booking for %s on %s is CONFIRMED!",
			bk.TimeSlot,
			bk.Date,
		),
		Type: models.NotificationSuccess,
	})

	return bk, nil
}
