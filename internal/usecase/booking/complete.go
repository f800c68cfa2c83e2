package booking

import (
	"context"
	"time"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/models"
)

type CompleteBooking struct {
	repo domain.Repository
}

func NewCompleteBooking(repo domain.Repository) *CompleteBooking {
	return &CompleteBooking{repo: repo}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := domain.Complete(bk, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, bk); err != nil {
		return nil, err
	}

	// the snapshotted price feeds the barber's revenue counter
	if err := uc.repo.AddEarnings(ctx, bk.BarberID, bk.TotalPrice); err != nil {
		return nil, err
	}

	return bk, nil
}
