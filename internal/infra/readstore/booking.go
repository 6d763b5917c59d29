package readstore

import (
	"context"
	"time"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

const findBookingByIDSQL = `
SELECT b.id, b.property_id, p.name, b.holder_id, b.from_date, b.to_date,
       b.status, b.total_price_cents, b.created_at, b.updated_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.id = $1`

const findBookingsByPropertySQL = `
SELECT b.id, b.property_id, p.name, b.from_date, b.to_date, b.status, b.total_price_cents, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.property_id = $1
  AND ($2::date IS NULL OR b.to_date > $2)
ORDER BY b.from_date`

const findBookingsByHolderSQL = `
SELECT b.id, b.property_id, p.name, b.from_date, b.to_date, b.status, b.total_price_cents, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
WHERE b.holder_id = $1
  AND ($2::date IS NULL OR b.to_date > $2)
  AND ($3::date IS NULL OR b.to_date <= $3)
ORDER BY b.from_date DESC`

// Same overlap predicate as the write-side conflict query; this one runs
// without locks and is only an advisory snapshot.
const findOverlappingSQL = `
SELECT from_date, to_date
FROM bookings
WHERE property_id = $1
  AND status IN ('pending', 'confirmed')
  AND from_date < $3
  AND to_date > $2
ORDER BY from_date`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&v.ID, &v.PropertyID, &v.PropertyName, &v.HolderID,
		&v.FromDate, &v.ToDate, &v.Status, &v.TotalPriceCents,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	v.Nights = nightsBetween(v.FromDate, v.ToDate)
	return &v, nil
}

func (r *BookingReadStore) FindByPropertyID(ctx context.Context, propertyID uuid.UUID, from *time.Time) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, findBookingsByPropertySQL, propertyID, from)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by property", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindByHolderID(ctx context.Context, holderID uuid.UUID, filter queries.HolderFilter) ([]*queries.BookingListItem, error) {
	// upcoming: stay has at least one night left; past: stay fully behind us.
	// The boundary is today because ranges are half-open.
	today := truncateToDay(time.Now().UTC())
	var notBefore, notAfter *time.Time
	switch filter {
	case queries.FilterUpcoming:
		notBefore = &today
	case queries.FilterPast:
		notAfter = &today
	}

	rows, err := r.db.Query(ctx, findBookingsByHolderSQL, holderID, notBefore, notAfter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by holder", err)
	}
	defer rows.Close()

	return scanBookingListItems(rows)
}

func (r *BookingReadStore) FindOverlapping(ctx context.Context, propertyID uuid.UUID, stay booking.StayRange) ([]queries.ConflictingRange, error) {
	rows, err := r.db.Query(ctx, findOverlappingSQL, propertyID, stay.From(), stay.To())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping bookings", err)
	}
	defer rows.Close()

	var result []queries.ConflictingRange
	for rows.Next() {
		var c queries.ConflictingRange
		if err := rows.Scan(&c.From, &c.To); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overlapping booking", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overlapping bookings", err)
	}

	return result, nil
}

type bookingRowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanBookingListItems(rows bookingRowScanner) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.PropertyID, &item.PropertyName,
			&item.FromDate, &item.ToDate, &item.Status,
			&item.TotalPriceCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking list item", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking list", err)
	}
	return result, nil
}

func nightsBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
