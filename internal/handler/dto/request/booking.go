package request

import (
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	From       string    `json:"from" binding:"required"`
	To         string    `json:"to" binding:"required"`
}

func (r CreateBookingRequest) ToParams(holderID uuid.UUID) commands.CreateBookingParams {
	return commands.CreateBookingParams{
		PropertyID: r.PropertyID,
		HolderID:   holderID,
		From:       r.From,
		To:         r.To,
	}
}
