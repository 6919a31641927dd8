package postgres

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// UoW backs the ledger contract with SQL transactions. Within runs writes at
// serializable isolation with retry on conflicts, WithinRead a read-only
// transaction for consistent multi-table snapshots.
type UoW struct {
	pool *pgxpool.Pool
}

func NewUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &UoW{pool: pool}
}

// Serializable keeps concurrent writers honest: two transactions that both
// read a slot as available cannot both commit a booking against it, the
// loser gets 40001 and retries against the updated row.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *UoW) WithinRead(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newTx(pgxTx)); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

// Avoids defer accumulation in the retry loop to prevent connection leaks.
func (u *UoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newTx(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) || attempt == maxRetries {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := backoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func backoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	return waitTime + time.Duration(cryptoRandInt63n(int64(waitTime/5)))
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	db DBTX

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	codeRepo         shared.CodeRepository
	locationRepo     shared.LocationRepository
	slotRepo         shared.SlotRepository
	bookingRepo      shared.BookingRepository
	paymentRepo      shared.PaymentRepository
	notificationRepo shared.NotificationRepository
}

func newTx(db DBTX) *pgTx {
	return &pgTx{db: db}
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = &userRepo{db: t.db}
	}
	return t.userRepo
}

func (t *pgTx) Codes() shared.CodeRepository {
	if t.codeRepo == nil {
		t.codeRepo = &codeRepo{db: t.db}
	}
	return t.codeRepo
}

func (t *pgTx) Locations() shared.LocationRepository {
	if t.locationRepo == nil {
		t.locationRepo = &locationRepo{db: t.db}
	}
	return t.locationRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = &slotRepo{db: t.db}
	}
	return t.slotRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = &bookingRepo{db: t.db}
	}
	return t.bookingRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = &paymentRepo{db: t.db}
	}
	return t.paymentRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = &notificationRepo{db: t.db}
	}
	return t.notificationRepo
}
