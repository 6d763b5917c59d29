//go:build unit

package booking_test

import (
	"testing"

	"booking-engine/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestStatusBlocksCapacity(t *testing.T) {
	assert.True(t, booking.StatusPending.BlocksCapacity())
	assert.True(t, booking.StatusConfirmed.BlocksCapacity())
	assert.False(t, booking.StatusCancelled.BlocksCapacity())
	assert.False(t, booking.StatusCompleted.BlocksCapacity())
}

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from booking.Status
		to   booking.Status
		want bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusPending, booking.StatusCompleted, false},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusCompleted, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCancelled, booking.StatusCancelled, false},
		{booking.StatusCompleted, booking.StatusConfirmed, false},
		{booking.StatusCompleted, booking.StatusCancelled, false},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+" -> "+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusPending, booking.StatusConfirmed,
		booking.StatusCancelled, booking.StatusCompleted,
	} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, booking.Status("held").IsValid())
	assert.False(t, booking.Status("").IsValid())
}

func TestBlockingStatuses(t *testing.T) {
	assert.Equal(t,
		[]booking.Status{booking.StatusPending, booking.StatusConfirmed},
		booking.BlockingStatuses(),
	)
}
