package response

import (
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	HolderID        uuid.UUID `json:"holderId"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Nights          int       `json:"nights"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromBookingView(bm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              bm.ID,
		PropertyID:      bm.PropertyID,
		PropertyName:    bm.PropertyName,
		HolderID:        bm.HolderID,
		From:            bm.FromDate.Format(booking.DateLayout),
		To:              bm.ToDate.Format(booking.DateLayout),
		Nights:          bm.Nights,
		Status:          bm.Status,
		TotalPriceCents: bm.TotalPriceCents,
		CreatedAt:       bm.CreatedAt,
		UpdatedAt:       bm.UpdatedAt,
	}
}

func FromBookingListItem(bm *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:              bm.ID,
		PropertyID:      bm.PropertyID,
		PropertyName:    bm.PropertyName,
		From:            bm.FromDate.Format(booking.DateLayout),
		To:              bm.ToDate.Format(booking.DateLayout),
		Status:          bm.Status,
		TotalPriceCents: bm.TotalPriceCents,
		CreatedAt:       bm.CreatedAt,
	}
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, len(items))
	for i, item := range items {
		out[i] = FromBookingListItem(item)
	}
	return out
}
