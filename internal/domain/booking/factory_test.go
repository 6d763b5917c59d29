//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.PropertyID, actual.PropertyID())
		assert.Equal(t, b.HolderID, actual.HolderID())
		assert.Equal(t, booking.StatusConfirmed, actual.Status())
		assert.True(t, actual.BlocksCapacity())
		assert.True(t, actual.IsHeldBy(b.HolderID))
		assert.False(t, actual.IsHeldBy(uuid.New()))
	})

	t.Run("price is nights times nightly rate", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.From = "2026-03-10"
			b.To = "2026-03-13"
			b.NightlyRateCents = 100
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, 3, actual.Stay().Nights())
		assert.Equal(t, int64(300), actual.TotalPrice().Cents())
	})

	t.Run("stay starting today is allowed", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Now = time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
			b.From = "2026-03-10"
			b.To = "2026-03-11"
		}).BuildDomain()
		assert.NoError(t, err)
	})

	t.Run("stay starting yesterday is rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Now = time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)
			b.From = "2026-03-10"
			b.To = "2026-03-13"
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrStayInPast)
		assert.ErrorContains(t, err, "2026-03-10 is before 2026-03-11")
	})

	t.Run("maximum duration is allowed", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.From = "2026-03-10"
			b.To = "2027-03-10" // 365 nights
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, booking.MaxStayNights, actual.Stay().Nights())
	})

	t.Run("over maximum duration is rejected", func(t *testing.T) {
		_, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.From = "2026-03-10"
			b.To = "2027-03-11" // 366 nights
		}).BuildDomain()
		assert.ErrorIs(t, err, booking.ErrStayTooLong)
		assert.ErrorContains(t, err, "2026-03-10/2027-03-11 spans 366 nights")
	})

	t.Run("zero nightly rate gives zero price", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.NightlyRateCents = 0
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(0), actual.TotalPrice().Cents())
	})
}

func TestReconstructBooking(t *testing.T) {
	stay, err := booking.ParseStayRange("2026-03-10", "2026-03-13")
	require.NoError(t, err)
	price, err := booking.NewMoney(30000)
	require.NoError(t, err)
	now := time.Now()

	t.Run("valid status", func(t *testing.T) {
		b, err := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(),
			stay, price, booking.StatusCancelled, now, now,
		)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.False(t, b.BlocksCapacity())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := booking.ReconstructBooking(
			uuid.New(), uuid.New(), uuid.New(),
			stay, price, booking.Status("held"), now, now,
		)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
