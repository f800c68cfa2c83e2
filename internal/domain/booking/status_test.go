package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberflow/api/internal/models"
)

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		confirm bool
		cancel  bool
		done    bool
	}{
		{"pending", StatusPending, true, true, false},
		{"confirmed", StatusConfirmed, false, true, true},
		{"cancelled", StatusCancelled, false, false, false},
		{"completed", StatusCompleted, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.confirm, CanConfirm(tc.from) == nil)
			assert.Equal(t, tc.cancel, CanCancel(tc.from) == nil)
			assert.Equal(t, tc.done, CanComplete(tc.from) == nil)
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(StatusPending))
	assert.True(t, IsActive(StatusConfirmed))
	assert.True(t, IsActive(StatusCompleted))
	assert.False(t, IsActive(StatusCancelled))
}

func TestDomainActionsStampTimes(t *testing.T) {
	now := time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)

	bk := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Confirm(bk, now))
	assert.Equal(t, string(StatusConfirmed), bk.Status)
	require.NotNil(t, bk.ConfirmedAt)
	assert.Equal(t, now, *bk.ConfirmedAt)

	require.NoError(t, Complete(bk, now))
	assert.Equal(t, string(StatusCompleted), bk.Status)
	require.NotNil(t, bk.CompletedAt)

	bk2 := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Cancel(bk2, now))
	assert.Equal(t, string(StatusCancelled), bk2.Status)
	require.NotNil(t, bk2.CancelledAt)

	// terminal states reject further actions
	assert.Error(t, Confirm(bk2, now))
	assert.Error(t, Cancel(bk, now))
}
