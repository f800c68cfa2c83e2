package booking

import (
	"context"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
)

type ToggleDayOff struct {
	repo domain.Repository
}

func NewToggleDayOff(repo domain.Repository) *ToggleDayOff {
	return &ToggleDayOff{repo: repo}
}

// Execute flips the barber's availability for one date: present dates are
// removed, absent dates added. Applying it twice is a no-op. Existing
// bookings on that date are left alone.
func (uc *ToggleDayOff) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) (offDays []string, dayOff bool, err error) {

	if !domain.IsValidDate(date) {
		return nil, false, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarberByID(ctx, barberID)
	if err != nil {
		return nil, false, err
	}

	has, err := uc.repo.HasOffDay(ctx, barber.ID, date)
	if err != nil {
		return nil, false, err
	}

	if has {
		err = uc.repo.RemoveOffDay(ctx, barber.ID, date)
	} else {
		err = uc.repo.AddOffDay(ctx, barber.ID, date)
	}
	if err != nil {
		return nil, false, err
	}

	offDays, err = uc.repo.ListOffDays(ctx, barber.ID)
	if err != nil {
		return nil, false, err
	}

	return offDays, !has, nil
}
