package queries

import (
	"context"

	"booking-engine/internal/infra"
	"booking-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

// PropertyReadStore is the engine's view of the catalog collaborator: it
// resolves a property id to identity and nightly price, nothing more.
type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type propertyQueriesImpl struct {
	store PropertyReadStore
}

func NewPropertyQueries(store PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{store: store}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
