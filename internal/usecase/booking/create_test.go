package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
)

const adminID = uint(99)

func newCreateFixture() (*memRepo, *recorderSink, *CreateBooking) {
	repo := newMemRepo()
	repo.addBarber(1, "James Wilson")
	repo.addService(1, "Classic Haircut", 35)

	sink := &recorderSink{}
	uc := NewCreateBooking(repo, sink, domain.NewSlotLocker(), adminID)
	return repo, sink, uc
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds with pending status and snapshotted price", func(t *testing.T) {
		_, sink, uc := newCreateFixture()

		bk, err := uc.Execute(ctx, CreateBookingInput{
			CustomerID: 10,
			BarberID:   1,
			ServiceID:  1,
			Date:       "2024-01-10",
			TimeSlot:   "11:00 AM",
		})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusPending), bk.Status)
		assert.Equal(t, 35.0, bk.TotalPrice)
		assert.NotEmpty(t, bk.Code)

		notes := sink.forUser(adminID)
		require.Len(t, notes, 1)
		assert.Contains(t, notes[0].Message, "2024-01-10")
		assert.Contains(t, notes[0].Message, "11:00 AM")
	})

	t.Run("rejects a barber day off and leaves the ledger unchanged", func(t *testing.T) {
		repo, _, uc := newCreateFixture()
		require.NoError(t, repo.AddOffDay(ctx, 1, "2024-01-10"))

		for _, slot := range domain.TimeSlots {
			_, err := uc.Execute(ctx, CreateBookingInput{
				CustomerID: 10,
				BarberID:   1,
				ServiceID:  1,
				Date:       "2024-01-10",
				TimeSlot:   slot,
			})
			assert.True(t, httperr.IsBusiness(err, "day_off_conflict"), "slot %s", slot)
		}

		all, err := repo.ListBookings(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("rejects a taken slot until the holder cancels", func(t *testing.T) {
		repo, _, uc := newCreateFixture()

		in := CreateBookingInput{
			CustomerID: 10,
			BarberID:   1,
			ServiceID:  1,
			Date:       "2024-01-10",
			TimeSlot:   "11:00 AM",
		}

		first, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		_, err = uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

		first.Status = string(domain.StatusCancelled)
		require.NoError(t, repo.UpdateBooking(ctx, first))

		_, err = uc.Execute(ctx, in)
		assert.NoError(t, err)
	})

	t.Run("rejects bad dates and unknown slots", func(t *testing.T) {
		_, _, uc := newCreateFixture()

		_, err := uc.Execute(ctx, CreateBookingInput{
			CustomerID: 10, BarberID: 1, ServiceID: 1,
			Date: "10/01/2024", TimeSlot: "11:00 AM",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))

		_, err = uc.Execute(ctx, CreateBookingInput{
			CustomerID: 10, BarberID: 1, ServiceID: 1,
			Date: "2024-01-10", TimeSlot: "11:30 AM",
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_time_slot"))
	})

	t.Run("rejects unknown barber and unknown service", func(t *testing.T) {
		_, _, uc := newCreateFixture()

		_, err := uc.Execute(ctx, CreateBookingInput{
			CustomerID: 10, BarberID: 7, ServiceID: 1,
			Date: "2024-01-10", TimeSlot: "11:00 AM",
		})
		assert.True(t, httperr.IsBusiness(err, "barber_not_found"))

		_, err = uc.Execute(ctx, CreateBookingInput{
			CustomerID: 10, BarberID: 1, ServiceID: 7,
			Date: "2024-01-10", TimeSlot: "11:00 AM",
		})
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newCreateFixture()

	const attempts = 16

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(ctx, CreateBookingInput{
				CustomerID: uint(100 + i),
				BarberID:   1,
				ServiceID:  1,
				Date:       "2024-01-10",
				TimeSlot:   "11:00 AM",
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, httperr.IsBusiness(err, "slot_conflict"))
		}
	}
	assert.Equal(t, 1, winners)
}
