package request

import (
	"github.com/google/uuid"
)

type QuoteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	From       string    `json:"from" binding:"required"`
	To         string    `json:"to" binding:"required"`
}

type CommitQuoteRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	From       string    `json:"from" binding:"required"`
	To         string    `json:"to" binding:"required"`
}
