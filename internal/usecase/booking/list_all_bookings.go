package booking

import (
	"context"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/dto"
)

type ListAllBookings struct {
	repo domain.Repository
}

func NewListAllBookings(repo domain.Repository) *ListAllBookings {
	return &ListAllBookings{repo: repo}
}

func (uc *ListAllBookings) Execute(
	ctx context.Context,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:           bk.ID,
			Code:         bk.Code,
			Date:         bk.Date,
			TimeSlot:     bk.TimeSlot,
			Status:       bk.Status,
			TotalPrice:   bk.TotalPrice,
			CustomerName: bk.Customer.Name,
			BarberName:   bk.Barber.Name,
			ServiceName:  bk.Service.Name,
			CreatedAt:    bk.CreatedAt,
		})
	}

	return out, nil
}
