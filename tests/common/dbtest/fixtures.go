//go:build unit || e2e

package dbtest

import (
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/infra/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Tables holds every collection the service writes; schema_migrations is
// left alone so tests do not re-run migrations.
var Tables = []string{"bookings", "contacts", "newsletter", "analytics"}

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertBooking stores b through the Postgres repository, bypassing the
// inventory check so tests can overbook on purpose.
func InsertBooking(t *testing.T, pool *pgxpool.Pool, b *booking.Booking) {
	t.Helper()

	err := repository.NewBookingRepository(pool).Create(context.Background(), b)
	require.NoError(t, err)
}

func CountRows(t *testing.T, db Querier, table string) int {
	t.Helper()
	require.True(t, slices.Contains(Tables, table), "unknown table %q", table)

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE "+strings.Join(Tables, ", "))
	return err
}
