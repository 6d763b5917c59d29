//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProperty(t *testing.T, db DBLike, name string, nightlyRateCents int64) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO properties (id, name, nightly_rate_cents) VALUES ($1, $2, $3)",
		propertyID, name, nightlyRateCents)
	require.NoError(t, err)

	return propertyID
}

// CreateTestBooking inserts a booking row directly, bypassing the API. Useful
// for seeding existing bookings a scenario must conflict with.
func CreateTestBooking(t *testing.T, db DBLike, propertyID, holderID uuid.UUID, from, to, status string, totalPriceCents int64) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO bookings (id, property_id, holder_id, from_date, to_date, status, total_price_cents)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		bookingID, propertyID, holderID, from, to, status, totalPriceCents)
	require.NoError(t, err)

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
