package commands

import (
	"context"
	"strings"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/domain/property"
	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/queries"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	PropertyID uuid.UUID
	HolderID   uuid.UUID
	From       string
	To         string
}

// ConflictError carries the intervals that blocked a create so the boundary
// can tell the caller which dates are taken. Retrieve it with errors.As.
type ConflictError struct {
	Conflicts []booking.StayRange
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return "requested dates conflict with an existing booking"
	}
	ranges := make([]string, len(e.Conflicts))
	for i, c := range e.Conflicts {
		ranges[i] = c.String()
	}
	return "requested dates conflict with existing bookings: " + strings.Join(ranges, ", ")
}

type BookingCommands interface {
	// CreateBooking is the only path that persists a booking. The conflict
	// check and the insert run in one transaction under a per-property row
	// lock, so of any set of concurrent overlapping requests exactly one
	// commits; the rest fail with errs.ErrBookingConflict.
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, holderID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	factory        *booking.Factory
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		factory:        factory,
		bookingQueries: bookingQueries,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	stay, err := booking.ParseStayRange(params.From, params.To)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	entity, err := c.buildBooking(ctx, params.PropertyID, params.HolderID, stay)
	if err != nil {
		return nil, err
	}

	var bookingID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Lock the property row first: this serializes check-then-insert
		// against every other creator targeting the same property.
		if _, err := tx.Properties().LockForBooking(ctx, tx.DB(), params.PropertyID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPropertyNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		blocking, err := tx.Bookings().FindBlocking(ctx, tx.DB(), params.PropertyID, stay, nil)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(blocking) > 0 {
			return errs.Mark(conflictFromBlocking(blocking), errs.ErrBookingConflict)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(&ConflictError{}, errs.ErrBookingConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Read-after-commit: return the full view from the read store
	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

// buildBooking runs every validation that does not need the transaction:
// range rules via the factory, then property existence via a plain read —
// range problems must surface as such even when the property is also
// unknown. The authoritative conflict decision still happens under the
// lock.
func (c *bookingCommandsImpl) buildBooking(ctx context.Context, propertyID, holderID uuid.UUID, stay booking.StayRange) (*booking.Booking, error) {
	if err := c.factory.ValidateStay(stay); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	snap, err := c.uow.CommandReads().PropertyByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	prop, err := property.NewProperty(snap.ID, snap.Name, snap.NightlyRateCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := c.factory.NewBooking(prop, holderID, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayRange)
	}

	return entity, nil
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, holderID uuid.UUID) (*queries.BookingView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if snap.HolderID != holderID {
			return errs.Mark(errs.Newf("booking %s is not held by %s", bookingID, holderID), errs.ErrNotBookingHolder)
		}

		if !snap.Status.CanTransitionTo(booking.StatusCancelled) {
			return errs.Mark(
				errs.Newf("cannot cancel booking in status %q", snap.Status),
				errs.ErrInvalidStatusTransition,
			)
		}

		// Cancelling only frees capacity, so no conflict check is needed.
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusCancelled); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := c.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return view, nil
}

func conflictFromBlocking(blocking []shared.BlockingBooking) *ConflictError {
	conflicts := make([]booking.StayRange, len(blocking))
	for i, b := range blocking {
		conflicts[i] = b.Stay
	}
	return &ConflictError{Conflicts: conflicts}
}
