package queries

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type AvailabilityResult struct {
	Available bool               `json:"available"`
	Conflicts []ConflictingRange `json:"conflicts,omitempty"`
}

type DateRangeInput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BulkRangeResult reports one range of a bulk check. A range that fails
// validation carries the message in Error and does not abort the others.
type BulkRangeResult struct {
	From      string             `json:"from"`
	To        string             `json:"to"`
	Available bool               `json:"available"`
	Conflicts []ConflictingRange `json:"conflicts,omitempty"`
	Error     *string            `json:"error,omitempty"`
}

// AvailabilityQueries answers whether a property is free for proposed
// stays. Results are point-in-time snapshots and never authoritative: a
// concurrent booking can land between a check and a later create, so
// callers must always revalidate through the create path.
type AvailabilityQueries interface {
	CheckSingle(ctx context.Context, propertyID uuid.UUID, from, to string) (*AvailabilityResult, error)
	CheckBulk(ctx context.Context, propertyID uuid.UUID, ranges []DateRangeInput) ([]BulkRangeResult, error)
}

type OverlapReadStore interface {
	FindOverlapping(ctx context.Context, propertyID uuid.UUID, stay booking.StayRange) ([]ConflictingRange, error)
}

type availabilityQueriesImpl struct {
	bookings   OverlapReadStore
	properties PropertyReadStore
}

func NewAvailabilityQueries(bookings OverlapReadStore, properties PropertyReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		bookings:   bookings,
		properties: properties,
	}
}

func (q *availabilityQueriesImpl) CheckSingle(ctx context.Context, propertyID uuid.UUID, from, to string) (*AvailabilityResult, error) {
	if err := q.ensurePropertyExists(ctx, propertyID); err != nil {
		return nil, err
	}
	return q.checkRange(ctx, propertyID, from, to)
}

func (q *availabilityQueriesImpl) CheckBulk(ctx context.Context, propertyID uuid.UUID, ranges []DateRangeInput) ([]BulkRangeResult, error) {
	if err := q.ensurePropertyExists(ctx, propertyID); err != nil {
		return nil, err
	}

	results := make([]BulkRangeResult, len(ranges))
	for i, r := range ranges {
		results[i] = BulkRangeResult{From: r.From, To: r.To}

		single, err := q.checkRange(ctx, propertyID, r.From, r.To)
		if err != nil {
			// Invalid ranges fail individually; the rest still get checked.
			msg := err.Error()
			results[i].Error = &msg
			continue
		}
		results[i].Available = single.Available
		results[i].Conflicts = single.Conflicts
	}

	return results, nil
}

func (q *availabilityQueriesImpl) checkRange(ctx context.Context, propertyID uuid.UUID, from, to string) (*AvailabilityResult, error) {
	stay, err := booking.ParseStayRange(from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	conflicts, err := q.bookings.FindOverlapping(ctx, propertyID, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

func (q *availabilityQueriesImpl) ensurePropertyExists(ctx context.Context, propertyID uuid.UUID) error {
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
