package response

import (
	"booking-engine/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	PropertyID      uuid.UUID `json:"propertyId"`
	PropertyName    string    `json:"propertyName"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Nights          int       `json:"nights"`
	TotalPriceCents int64     `json:"totalPriceCents"`
}

func FromQuote(q *commands.Quote) *QuoteResponse {
	return &QuoteResponse{
		PropertyID:      q.PropertyID,
		PropertyName:    q.PropertyName,
		From:            q.From,
		To:              q.To,
		Nights:          q.Nights,
		TotalPriceCents: q.TotalPriceCents,
	}
}
