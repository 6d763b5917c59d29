package response

import (
	"booking-engine/internal/domain/booking"
	"booking-engine/internal/usecase/queries"
)

type ConflictingRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AvailabilityResponse struct {
	Available bool                       `json:"available"`
	Conflicts []ConflictingRangeResponse `json:"conflicts,omitempty"`
}

type BulkRangeResponse struct {
	From      string                     `json:"from"`
	To        string                     `json:"to"`
	Available bool                       `json:"available"`
	Conflicts []ConflictingRangeResponse `json:"conflicts,omitempty"`
	Error     *string                    `json:"error,omitempty"`
}

type BulkAvailabilityResponse struct {
	Results []BulkRangeResponse `json:"results"`
}

func FromAvailabilityResult(r *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: r.Available,
		Conflicts: fromConflictingRanges(r.Conflicts),
	}
}

func FromBulkRangeResults(results []queries.BulkRangeResult) *BulkAvailabilityResponse {
	out := make([]BulkRangeResponse, len(results))
	for i, r := range results {
		out[i] = BulkRangeResponse{
			From:      r.From,
			To:        r.To,
			Available: r.Available,
			Conflicts: fromConflictingRanges(r.Conflicts),
			Error:     r.Error,
		}
	}
	return &BulkAvailabilityResponse{Results: out}
}

func fromConflictingRanges(ranges []queries.ConflictingRange) []ConflictingRangeResponse {
	if len(ranges) == 0 {
		return nil
	}
	out := make([]ConflictingRangeResponse, len(ranges))
	for i, r := range ranges {
		out[i] = ConflictingRangeResponse{
			From: r.From.Format(booking.DateLayout),
			To:   r.To.Format(booking.DateLayout),
		}
	}
	return out
}
