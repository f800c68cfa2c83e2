package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barberflow/api/internal/domain/booking"
	"github.com/barberflow/api/internal/httperr"
	"github.com/barberflow/api/internal/models"
)

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()
	repo, sink, createUC := newCreateFixture()
	confirmUC := NewConfirmBooking(repo, sink)

	bk, err := createUC.Execute(ctx, CreateBookingInput{
		CustomerID: 10, BarberID: 1, ServiceID: 1,
		Date: "2024-01-10", TimeSlot: "11:00 AM",
	})
	require.NoError(t, err)

	out, err := confirmUC.Execute(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
	require.NotNil(t, out.ConfirmedAt)

	// exactly one success notification addressed to the customer
	notes := sink.forUser(10)
	require.Len(t, notes, 1)
	assert.Equal(t, models.NotificationSuccess, notes[0].Type)

	// confirming twice is rejected
	_, err = confirmUC.Execute(ctx, bk.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	repo, sink, createUC := newCreateFixture()
	confirmUC := NewConfirmBooking(repo, sink)
	cancelUC := NewCancelBooking(repo, sink)

	t.Run("pending booking can be cancelled with a warning notice", func(t *testing.T) {
		bk, err := createUC.Execute(ctx, CreateBookingInput{
			CustomerID: 10, BarberID: 1, ServiceID: 1,
			Date: "2024-01-10", TimeSlot: "09:00 AM",
		})
		require.NoError(t, err)

		out, err := cancelUC.Execute(ctx, bk.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), out.Status)

		notes := sink.forUser(10)
		require.Len(t, notes, 1)
		assert.Equal(t, models.NotificationWarning, notes[0].Type)
	})

	t.Run("confirmed booking can be cancelled", func(t *testing.T) {
		bk, err := createUC.Execute(ctx, CreateBookingInput{
			CustomerID: 11, BarberID: 1, ServiceID: 1,
			Date: "2024-01-10", TimeSlot: "10:00 AM",
		})
		require.NoError(t, err)

		_, err = confirmUC.Execute(ctx, bk.ID)
		require.NoError(t, err)

		out, err := cancelUC.Execute(ctx, bk.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), out.Status)
	})

	t.Run("cancelled booking is terminal", func(t *testing.T) {
		bk, err := createUC.Execute(ctx, CreateBookingInput{
			CustomerID: 12, BarberID: 1, ServiceID: 1,
			Date: "2024-01-10", TimeSlot: "12:00 PM",
		})
		require.NoError(t, err)

		_, err = cancelUC.Execute(ctx, bk.ID)
		require.NoError(t, err)

		_, err = cancelUC.Execute(ctx, bk.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
		_, err = confirmUC.Execute(ctx, bk.ID)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := cancelUC.Execute(ctx, 12345)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})
}

func TestCompleteBooking(t *testing.T) {
	ctx := context.Background()
	repo, sink, createUC := newCreateFixture()
	confirmUC := NewConfirmBooking(repo, sink)
	completeUC := NewCompleteBooking(repo)

	bk, err := createUC.Execute(ctx, CreateBookingInput{
		CustomerID: 10, BarberID: 1, ServiceID: 1,
		Date: "2024-01-10", TimeSlot: "11:00 AM",
	})
	require.NoError(t, err)

	// pending cannot jump straight to completed
	_, err = completeUC.Execute(ctx, bk.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = confirmUC.Execute(ctx, bk.ID)
	require.NoError(t, err)

	out, err := completeUC.Execute(ctx, bk.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	require.NotNil(t, out.CompletedAt)

	// the snapshotted price lands on the barber's earnings
	barber, err := repo.GetBarberByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 35.0, barber.Earnings)

	// completed is terminal
	_, err = completeUC.Execute(ctx, bk.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// End-to-end admission scenario: create, duplicate fails, confirm
// notifies, cancel frees the slot, identical create succeeds again.
func TestBookingLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	repo, sink, createUC := newCreateFixture()
	confirmUC := NewConfirmBooking(repo, sink)
	cancelUC := NewCancelBooking(repo, sink)

	in := CreateBookingInput{
		CustomerID: 10,
		BarberID:   1,
		ServiceID:  1,
		Date:       "2024-01-10",
		TimeSlot:   "11:00 AM",
	}

	first, err := createUC.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), first.Status)
	assert.Equal(t, 35.0, first.TotalPrice)

	_, err = createUC.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, "slot_conflict"))

	confirmed, err := confirmUC.Execute(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)

	success := 0
	for _, ev := range sink.forUser(10) {
		if ev.Type == models.NotificationSuccess {
			success++
		}
	}
	assert.Equal(t, 1, success)

	cancelled, err := cancelUC.Execute(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)

	_, err = createUC.Execute(ctx, in)
	assert.NoError(t, err)
}
