package booking

import (
	"context"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/dto"
)

type ListCustomerBookings struct {
	repo domain.Repository
}

func NewListCustomerBookings(
	repo domain.Repository,
) *ListCustomerBookings {
	return &ListCustomerBookings{
		repo: repo,
	}
}

func (uc *ListCustomerBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          bk.ID,
			Code:        bk.Code,
			Date:        bk.Date,
			TimeSlot:    bk.TimeSlot,
			Status:      bk.Status,
			TotalPrice:  bk.TotalPrice,
			BarberName:  bk.Barber.Name,
			ServiceName: bk.Service.Name,
			CreatedAt:   bk.CreatedAt,
		})
	}

	return out, nil
}
