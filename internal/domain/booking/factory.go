package booking

import (
	"errors"
	"fmt"

	"booking-engine/internal/domain/property"
	"booking-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

// MaxStayNights caps a single booking's duration.
const MaxStayNights = 365

var (
	ErrStayInPast  = errors.New("stay cannot start in the past")
	ErrStayTooLong = errors.New("stay exceeds the maximum duration")
)

// Factory builds new bookings. It owns the creation-time rules that need a
// clock or the property's price; range ordering itself is enforced by
// StayRange.
type Factory struct {
	clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{clock: clock}
}

// ValidateStay applies the creation-time rules to a proposed range:
// starting today is allowed, starting yesterday is not, and the stay must
// not exceed MaxStayNights. Quote and create paths share this so they can
// never drift apart.
func (f *Factory) ValidateStay(stay StayRange) error {
	today := truncateToDay(f.clock.Now().UTC())
	if stay.From().Before(today) {
		return fmt.Errorf("%w: %s is before %s",
			ErrStayInPast, stay.From().Format(DateLayout), today.Format(DateLayout))
	}
	if stay.Nights() > MaxStayNights {
		return fmt.Errorf("%w: %s spans %d nights, limit is %d",
			ErrStayTooLong, stay, stay.Nights(), MaxStayNights)
	}
	return nil
}

// NewBooking creates a confirmed booking priced at nights * nightly rate,
// captured from the property at creation time and never recomputed.
func (f *Factory) NewBooking(prop *property.Property, holderID uuid.UUID, stay StayRange) (*Booking, error) {
	if err := f.ValidateStay(stay); err != nil {
		return nil, err
	}

	totalPrice, err := NewMoney(int64(stay.Nights()) * prop.NightlyRateCents())
	if err != nil {
		return nil, err
	}

	return newBooking(prop.ID(), holderID, stay, totalPrice), nil
}
