package shared

import (
	"context"

	"booking-engine/internal/domain/booking"
	"booking-engine/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: validation reads outside any transaction
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Properties() PropertyRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// FindBlocking returns every capacity-blocking booking on the property
	// whose range overlaps stay, optionally excluding one booking id. Run it
	// on the transaction that will insert, after the property row is locked.
	FindBlocking(ctx context.Context, db db.DBTX, propertyID uuid.UUID, stay booking.StayRange, excludeID *uuid.UUID) ([]BlockingBooking, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
}

type PropertyRepository interface {
	// LockForBooking takes the per-property row lock that serializes
	// check-then-insert against concurrent creators.
	LockForBooking(ctx context.Context, db db.DBTX, id uuid.UUID) (*PropertySnapshot, error)
}
