package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"showhost-service/internal/infra/db"
	"showhost-service/internal/infra/readstore"
	"showhost-service/internal/infra/repository"
	"showhost-service/internal/pkg/errs"
	"showhost-service/internal/usecase/shared"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Serializable isolation keeps invite transitions per show linearizable and
// the mirrored connection projections in lockstep; contention aborts are
// retried here rather than surfaced to every caller.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(errs.Mark(err, errTransactionBegin), shared.ErrTransientStorage)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
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

		if !isRetryableError(err) {
			return err
		}

		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, shared.ErrTransientStorage)
		}

		waitTime := calculateBackoff(attempt, base)

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

	return shared.ErrTransientStorage
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
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
	// #nosec G115 -- safe conversion after masking the sign bit
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
	dbtx db.DBTX

	// Lazy-initialized repositories
	connectionRepo   shared.ConnectionRepository
	inviteRepo       shared.InviteRepository
	showRepo         shared.ShowRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Connections() shared.ConnectionRepository {
	if t.connectionRepo == nil {
		t.connectionRepo = repository.NewConnectionRepository()
	}
	return t.connectionRepo
}

func (t *pgTx) Invites() shared.InviteRepository {
	if t.inviteRepo == nil {
		t.inviteRepo = repository.NewInviteRepository()
	}
	return t.inviteRepo
}

func (t *pgTx) Shows() shared.ShowRepository {
	if t.showRepo == nil {
		t.showRepo = repository.NewShowRepository()
	}
	return t.showRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	showStore       *readstore.ShowReadStore
	inviteStore     *readstore.InviteReadStore
	connectionStore *readstore.ConnectionReadStore
}

func (r *commandReads) ShowByID(ctx context.Context, id uuid.UUID) (*shared.ShowSnapshot, error) {
	if r.showStore == nil {
		r.showStore = readstore.NewShowReadStore(r.dbtx)
	}
	return r.showStore.FindByID(ctx, id)
}

func (r *commandReads) InviteByID(ctx context.Context, id uuid.UUID) (*shared.InviteSnapshot, error) {
	if r.inviteStore == nil {
		r.inviteStore = readstore.NewInviteReadStore(r.dbtx)
	}
	return r.inviteStore.FindByID(ctx, id)
}

func (r *commandReads) ConnectionPair(ctx context.Context, dropshipperID, sellerID uuid.UUID) (*shared.ConnectionPairSnapshot, error) {
	if r.connectionStore == nil {
		r.connectionStore = readstore.NewConnectionReadStore(r.dbtx)
	}
	return r.connectionStore.PairSnapshot(ctx, dropshipperID, sellerID)
}
