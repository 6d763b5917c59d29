package request

import (
	"booking-engine/internal/usecase/queries"
)

type DateRange struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

type BulkAvailabilityRequest struct {
	Ranges []DateRange `json:"ranges" binding:"required,min=1,dive"`
}

func (r BulkAvailabilityRequest) ToInputs() []queries.DateRangeInput {
	inputs := make([]queries.DateRangeInput, len(r.Ranges))
	for i, rng := range r.Ranges {
		inputs[i] = queries.DateRangeInput{From: rng.From, To: rng.To}
	}
	return inputs
}
