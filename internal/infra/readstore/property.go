package readstore

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

const findPropertyByIDSQL = `
SELECT id, name, nightly_rate_cents, created_at, updated_at
FROM properties
WHERE id = $1`

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(dbtx db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: dbtx}
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	var v queries.PropertyView
	err := r.db.QueryRow(ctx, findPropertyByIDSQL, id).Scan(
		&v.ID, &v.Name, &v.NightlyRateCents, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}
	return &v, nil
}
