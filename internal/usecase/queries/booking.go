package queries

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID, from *time.Time) ([]*BookingListItem, error)
	FindByHolderID(ctx context.Context, holderID uuid.UUID, filter HolderFilter) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByHolder accepts "upcoming", "past", "all" or "" (= all).
	ListByHolder(ctx context.Context, holderID uuid.UUID, filter string) ([]*BookingListItem, error)
	// ListByProperty optionally drops stays that ended before fromDate
	// (YYYY-MM-DD).
	ListByProperty(ctx context.Context, propertyID uuid.UUID, fromDate string) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByHolder(ctx context.Context, holderID uuid.UUID, filter string) ([]*BookingListItem, error) {
	parsed, err := ParseHolderFilter(filter)
	if err != nil {
		return nil, err
	}

	items, err := q.store.FindByHolderID(ctx, holderID, parsed)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, fromDate string) ([]*BookingListItem, error) {
	var from *time.Time
	if fromDate != "" {
		parsed, err := booking.ParseDate(fromDate)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidStayRange)
		}
		from = &parsed
	}

	items, err := q.store.FindByPropertyID(ctx, propertyID, from)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
