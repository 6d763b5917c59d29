package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid booking status")

// Booking claims a property for a half-open range of nights on behalf of a
// holder. Only the status (and updatedAt) ever change after creation.
type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	holderID   uuid.UUID
	stay       StayRange
	totalPrice Money
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func newBooking(propertyID, holderID uuid.UUID, stay StayRange, totalPrice Money) *Booking {
	return &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		holderID:   holderID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     StatusConfirmed,
	}
}

func ReconstructBooking(
	id, propertyID, holderID uuid.UUID,
	stay StayRange,
	totalPrice Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:         id,
		propertyID: propertyID,
		holderID:   holderID,
		stay:       stay,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (b *Booking) BlocksCapacity() bool {
	return b.status.BlocksCapacity()
}

func (b *Booking) IsHeldBy(holderID uuid.UUID) bool {
	return b.holderID == holderID
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) HolderID() uuid.UUID   { return b.holderID }
func (b *Booking) Stay() StayRange       { return b.stay }
func (b *Booking) TotalPrice() Money     { return b.totalPrice }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
