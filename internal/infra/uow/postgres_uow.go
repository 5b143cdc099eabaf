package uow

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/infra/readstore"
	"atlas-hotel/internal/infra/repository"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	pgErrCodeLockNotAvailable     = "55P03"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy backs off exponentially with up to 20% jitter.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) shouldRetry(err error, attempt int) bool {
	return attempt < p.maxRetries && isRetryableError(err)
}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	return wait + rand.N(wait/5+1)
}

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	reads       *readstore.ReadStore
	retry       retryPolicy
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool) *PostgresUoW {
	return &PostgresUoW{
		pool:        pool,
		reads:       readstore.NewReadStore(pool),
		retry:       defaultRetry,
		lockTimeout: 5 * time.Second,
	}
}

// Within runs fn at ReadCommitted: inventory checks serialize on an advisory
// lock and status changes on a row lock. A booking stuck behind the inventory
// lock gives up after lockTimeout and is retried like a deadlock.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if !u.retry.shouldRetry(err, attempt) {
			if attempt > 0 && isRetryableError(err) {
				slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		wait := u.retry.backoff(attempt)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait_ms", wait.Milliseconds(), "error", err.Error())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (u *PostgresUoW) Reads() shared.ReadStore {
	return u.reads
}

// attempt owns exactly one pgx transaction so nothing is deferred across retries.
func (u *PostgresUoW) attempt(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) (err error) {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rbErr.Error())
		}
	}()

	if u.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", u.lockTimeout.Milliseconds())
		if _, err = pgxTx.Exec(ctx, stmt); err != nil {
			return errs.Wrap(err, "set lock timeout")
		}
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx}); err != nil {
		return err
	}
	if err = pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected, pgErrCodeLockNotAvailable:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	bookingRepo *repository.BookingRepository
	inquiryRepo *repository.InquiryRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Inquiries() shared.InquiryRepository {
	if t.inquiryRepo == nil {
		t.inquiryRepo = repository.NewInquiryRepository(t.dbtx)
	}
	return t.inquiryRepo
}
