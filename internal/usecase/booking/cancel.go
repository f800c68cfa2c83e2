package booking

import (
	"context"
	"fmt"
	"time"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/notify"
)

type CancelBooking struct {
	repo     domain.Repository
	notifier notify.Sink
}

func NewCancelBooking(
	repo domain.Repository,
	notifier notify.Sink,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(bk, time.Now()); err != nil {
		return nil, err
	}

	// the slot is free for a new request the moment this row is saved
	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		UserID: bk.CustomerID,
		Message: fmt.Sprintf(
			"Your booking for %s on %s was cancelled.",
			bk.TimeSlot,
			bk.Date,
		),
		Type: models.NotificationWarning,
	})

	return bk, nil
}
