package queries

import (
	"time"

	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	HolderID        uuid.UUID `json:"holder_id"`
	FromDate        time.Time `json:"from_date"`
	ToDate          time.Time `json:"to_date"`
	Nights          int       `json:"nights"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	FromDate        time.Time `json:"from_date"`
	ToDate          time.Time `json:"to_date"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

type PropertyView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ConflictingRange is one taken interval reported back to the caller.
type ConflictingRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// HolderFilter narrows a holder's booking list by where the stay sits
// relative to today.
type HolderFilter string

const (
	FilterUpcoming HolderFilter = "upcoming"
	FilterPast     HolderFilter = "past"
	FilterAll      HolderFilter = "all"
)

func ParseHolderFilter(s string) (HolderFilter, error) {
	switch HolderFilter(s) {
	case FilterUpcoming, FilterPast, FilterAll:
		return HolderFilter(s), nil
	case "":
		return FilterAll, nil
	default:
		return "", errs.Mark(errs.Newf("unknown filter %q", s), errs.ErrInvalidListFilter)
	}
}
