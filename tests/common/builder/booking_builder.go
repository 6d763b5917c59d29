//go:build unit || e2e

package builder

import (
	"time"

	dombooking "booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/property"
	reqdto "booking-engine/internal/handler/dto/request"
	"booking-engine/internal/pkg/clock"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	PropertyID       uuid.UUID
	PropertyName     string
	NightlyRateCents int64
	HolderID         uuid.UUID
	From             string
	To               string
	Status           string
	Now              time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		PropertyID:       uuid.New(),
		PropertyName:     "Seaside Cottage",
		NightlyRateCents: 10000,
		HolderID:         uuid.New(),
		From:             "2026-03-10",
		To:               "2026-03-13",
		Status:           dombooking.StatusConfirmed.String(),
		Now:              now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildStay() (dombooking.StayRange, error) {
	return dombooking.ParseStayRange(b.From, b.To)
}

func (b *BookingBuilder) BuildProperty() (*property.Property, error) {
	return property.NewProperty(b.PropertyID, b.PropertyName, b.NightlyRateCents)
}

// BuildDomain runs the real factory against a fixed clock set to Now.
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	stay, err := b.BuildStay()
	if err != nil {
		return nil, err
	}
	prop, err := b.BuildProperty()
	if err != nil {
		return nil, err
	}
	factory := dombooking.NewFactory(clock.NewFixedClock(b.Now))
	return factory.NewBooking(prop, b.HolderID, stay)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		From:       b.From,
		To:         b.To,
	}
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		PropertyID: b.PropertyID,
		From:       b.From,
		To:         b.To,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	stay, _ := b.BuildStay()
	return &queries.BookingView{
		ID:              uuid.New(),
		PropertyID:      b.PropertyID,
		PropertyName:    b.PropertyName,
		HolderID:        b.HolderID,
		FromDate:        stay.From(),
		ToDate:          stay.To(),
		Nights:          stay.Nights(),
		Status:          b.Status,
		TotalPriceCents: int64(stay.Nights()) * b.NightlyRateCents,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	stay, _ := b.BuildStay()
	return &queries.BookingListItem{
		ID:              uuid.New(),
		PropertyID:      b.PropertyID,
		PropertyName:    b.PropertyName,
		FromDate:        stay.From(),
		ToDate:          stay.To(),
		Status:          b.Status,
		TotalPriceCents: int64(stay.Nights()) * b.NightlyRateCents,
		CreatedAt:       b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildPropertyView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:               b.PropertyID,
		Name:             b.PropertyName,
		NightlyRateCents: b.NightlyRateCents,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}
