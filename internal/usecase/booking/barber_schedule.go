package booking

import (
	"context"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/dto"
	"github.com/barberflow/api/internal/httperr"
)

type BarberSchedule struct {
	repo domain.Repository
}

func NewBarberSchedule(repo domain.Repository) *BarberSchedule {
	return &BarberSchedule{repo: repo}
}

// Execute lays the barber's day out over the fixed slot grid. A slot is
// shown as taken only while its booking is active; cancelled bookings
// leave the slot free.
func (uc *BarberSchedule) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.ScheduleSlotDTO, error) {

	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookings, err := uc.repo.ListBookingsForBarberDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[string]dto.BookingListDTO, len(bookings))
	for _, bk := range bookings {
		if !domain.IsActive(domain.Status(bk.Status)) {
			continue
		}
		bySlot[bk.TimeSlot] = dto.BookingListDTO{
			ID:           bk.ID,
			Code:         bk.Code,
			Date:         bk.Date,
			TimeSlot:     bk.TimeSlot,
			Status:       bk.Status,
			TotalPrice:   bk.TotalPrice,
			CustomerName: bk.Customer.Name,
			ServiceName:  bk.Service.Name,
			CreatedAt:    bk.CreatedAt,
		}
	}

	out := make([]dto.ScheduleSlotDTO, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		entry := dto.ScheduleSlotDTO{TimeSlot: slot}
		if bk, ok := bySlot[slot]; ok {
			entry.Booking = &bk
		}
		out = append(out, entry)
	}

	return out, nil
}
