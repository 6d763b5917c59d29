package repository

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// FOR UPDATE scopes the creator's check-then-insert to one property: two
// transactions booking the same property serialize here, while different
// properties never contend.
const lockPropertySQL = `
SELECT id, name, nightly_rate_cents
FROM properties
WHERE id = $1
FOR UPDATE`

type PropertyRepository struct{}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) LockForBooking(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.PropertySnapshot, error) {
	var snap shared.PropertySnapshot
	err := dbtx.QueryRow(ctx, lockPropertySQL, id).Scan(&snap.ID, &snap.Name, &snap.NightlyRateCents)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock property", err)
	}
	return &snap, nil
}
