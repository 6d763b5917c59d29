package commands

import (
	"context"
	"log/slog"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Quote is a non-binding priced summary for a proposed stay. Nothing is held
// against it and it never expires; whether the dates are still free is
// decided again, from scratch, at commit time.
type Quote struct {
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyName    string    `json:"property_name"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Nights          int       `json:"nights"`
	TotalPriceCents int64     `json:"total_price_cents"`
}

// QuoteCache retains the most recent quote per holder so a later "confirm"
// can reference it without repeating the dates. It is advisory storage only
// and is never consulted for conflict decisions.
type QuoteCache interface {
	Put(ctx context.Context, holderID uuid.UUID, q *Quote) error
	// Get returns (nil, nil) when no quote is cached for the holder.
	Get(ctx context.Context, holderID uuid.UUID) (*Quote, error)
	Delete(ctx context.Context, holderID uuid.UUID) error
}

type QuoteCommands interface {
	Quote(ctx context.Context, holderID, propertyID uuid.UUID, from, to string) (*Quote, error)
	// Commit re-runs the full conflict-safe create. Because Quote places no
	// hold, Commit can fail with errs.ErrBookingConflict even immediately
	// after a successful Quote; callers must surface that to the user.
	Commit(ctx context.Context, holderID, propertyID uuid.UUID, from, to string) (*queries.BookingView, error)
	// CommitLast replays the holder's cached quote through Commit.
	CommitLast(ctx context.Context, holderID uuid.UUID) (*queries.BookingView, error)
}

type quoteCommandsImpl struct {
	uow          shared.UnitOfWork
	factory      *booking.Factory
	availability queries.AvailabilityQueries
	bookings     BookingCommands
	cache        QuoteCache
}

func NewQuoteCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	availability queries.AvailabilityQueries,
	bookings BookingCommands,
	cache QuoteCache,
) QuoteCommands {
	return &quoteCommandsImpl{
		uow:          uow,
		factory:      factory,
		availability: availability,
		bookings:     bookings,
		cache:        cache,
	}
}

func (q *quoteCommandsImpl) Quote(ctx context.Context, holderID, propertyID uuid.UUID, from, to string) (*Quote, error) {
	stay, err := booking.ParseStayRange(from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}
	if err := q.factory.ValidateStay(stay); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	snap, err := q.uow.CommandReads().PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	check, err := q.availability.CheckSingle(ctx, propertyID, from, to)
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, errs.Mark(conflictFromRanges(check.Conflicts), errs.ErrDatesUnavailable)
	}

	quote := &Quote{
		PropertyID:      snap.ID,
		PropertyName:    snap.Name,
		From:            stay.From().Format(booking.DateLayout),
		To:              stay.To().Format(booking.DateLayout),
		Nights:          stay.Nights(),
		TotalPriceCents: int64(stay.Nights()) * snap.NightlyRateCents,
	}

	// Best effort: losing the cached copy only costs the caller a retyped
	// date range.
	if err := q.cache.Put(ctx, holderID, quote); err != nil {
		slog.Warn("failed to cache quote", "holder_id", holderID, "error", err.Error())
	}

	return quote, nil
}

func (q *quoteCommandsImpl) Commit(ctx context.Context, holderID, propertyID uuid.UUID, from, to string) (*queries.BookingView, error) {
	return q.bookings.CreateBooking(ctx, CreateBookingParams{
		PropertyID: propertyID,
		HolderID:   holderID,
		From:       from,
		To:         to,
	})
}

func (q *quoteCommandsImpl) CommitLast(ctx context.Context, holderID uuid.UUID) (*queries.BookingView, error) {
	cached, err := q.cache.Get(ctx, holderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if cached == nil {
		return nil, errs.ErrNoCachedQuote
	}

	view, err := q.Commit(ctx, holderID, cached.PropertyID, cached.From, cached.To)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Delete(ctx, holderID); err != nil {
		slog.Warn("failed to clear cached quote", "holder_id", holderID, "error", err.Error())
	}

	return view, nil
}

func conflictFromRanges(ranges []queries.ConflictingRange) *ConflictError {
	conflicts := make([]booking.StayRange, 0, len(ranges))
	for _, r := range ranges {
		rng, err := booking.NewStayRange(r.From, r.To)
		if err != nil {
			continue
		}
		conflicts = append(conflicts, rng)
	}
	return &ConflictError{Conflicts: conflicts}
}
