package response

import (
	"time"

	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromPropertyView(pm *queries.PropertyView) *PropertyResponse {
	return &PropertyResponse{
		ID:               pm.ID,
		Name:             pm.Name,
		NightlyRateCents: pm.NightlyRateCents,
		CreatedAt:        pm.CreatedAt,
		UpdatedAt:        pm.UpdatedAt,
	}
}
