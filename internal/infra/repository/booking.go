package repository

import (
	"context"
	"errors"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

const createBookingSQL = `
INSERT INTO bookings (id, property_id, holder_id, from_date, to_date, total_price_cents, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

// The date predicate mirrors booking.Overlaps for half-open [from, to)
// ranges; keep the two in sync.
const findBlockingSQL = `
SELECT id, holder_id, from_date, to_date, status
FROM bookings
WHERE property_id = $1
  AND status IN ('pending', 'confirmed')
  AND from_date < $3
  AND to_date > $2
  AND ($4::uuid IS NULL OR id <> $4)
ORDER BY from_date`

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $2, updated_at = now()
WHERE id = $1`

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.PropertyID(),
		b.HolderID(),
		b.Stay().From(),
		b.Stay().To(),
		b.TotalPrice().Cents(),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				// The schema's overlap exclusion constraint fired. With the
				// property row locked this is unreachable; it exists as a
				// second line of defense.
				return uuid.Nil, infra.WrapRepoErr("overlapping booking exists", err, infra.KindConflict)
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("booking already exists", err, infra.KindDuplicateKey)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindBlocking(
	ctx context.Context,
	dbtx db.DBTX,
	propertyID uuid.UUID,
	stay booking.StayRange,
	excludeID *uuid.UUID,
) ([]shared.BlockingBooking, error) {
	rows, err := dbtx.Query(ctx, findBlockingSQL, propertyID, stay.From(), stay.To(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query blocking bookings", err)
	}
	defer rows.Close()

	var result []shared.BlockingBooking
	for rows.Next() {
		var (
			id       uuid.UUID
			holderID uuid.UUID
			from     time.Time
			to       time.Time
			status   string
		)
		if err := rows.Scan(&id, &holderID, &from, &to, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking booking", err)
		}

		rng, err := booking.NewStayRange(from, to)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid range", err)
		}

		result = append(result, shared.BlockingBooking{
			ID:       id,
			HolderID: holderID,
			Stay:     rng,
			Status:   booking.Status(status),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocking bookings", err)
	}

	return result, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
