package shared

import (
	"time"

	"booking-engine/internal/domain/booking"

	"github.com/google/uuid"
)

// Write-side snapshots keep the command layer off the read-side view types.
type PropertySnapshot struct {
	ID               uuid.UUID
	Name             string
	NightlyRateCents int64
}

type BookingSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	HolderID   uuid.UUID
	Stay       booking.StayRange
	Status     booking.Status
	CreatedAt  time.Time
}

// BlockingBooking is a capacity-blocking row returned by the conflict query.
type BlockingBooking struct {
	ID       uuid.UUID
	HolderID uuid.UUID
	Stay     booking.StayRange
	Status   booking.Status
}
